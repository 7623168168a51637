package chainmap

// NoEntryFound - Custom error to inform that no entry was found
type NoEntryFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NoEntryFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}
