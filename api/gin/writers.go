package gin

type ginWriter struct {
}

// Write will output the message using the logger at debug level
func (gv *ginWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "message", string(p))

	return len(p), nil
}

type ginErrorWriter struct {
}

// Write will output the message using the logger at error level
func (gev *ginErrorWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "error", string(p))

	return len(p), nil
}
