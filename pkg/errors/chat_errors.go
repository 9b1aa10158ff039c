package errors

var (
	// Key lifecycle — used by keystore/directory
	ErrKeyGenerationFailed  = Internal("secure random source unavailable, cannot generate key pair")
	ErrCorruptKeyStore      = FailedPrecondition("key store holds only half of a key pair, explicit reset required")
	ErrKeyNotFound          = NotFound("user has not published a public key")
	ErrDirectoryUnavailable = Unavailable("public key directory unreachable")

	// Cipher errors — authentication failure is never recoverable into plaintext
	ErrDecryptionFailed = Unauthorized("message authentication failed")

	// Chat domain
	ErrChatAlreadyExists = AlreadyExists("individual chat already exists for this pair")
	ErrChatNotFound      = NotFound("chat not found")
	ErrNotParticipant    = Forbidden("user is not a participant in this chat")
	ErrMessageNotFound   = NotFound("message not found")
	ErrGroupNotEncrypted = FailedPrecondition("single-recipient encryption cannot cover a group chat")
	ErrEmptyParticipants = InvalidArg("a chat needs at least two participants")

	// User domain
	ErrUserNotFound    = NotFound("user not found")
	ErrUsernameTaken   = AlreadyExists("username is already taken")
	ErrInvalidUsername = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrResolveFailed(cause error) error {
	return Wrap(CodeInternal, "failed to resolve chat", cause)
}
