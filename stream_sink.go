package richtext

// Stream receives formatted blocks from Parse as their lines complete.
type Stream interface {
	WriteBlock(Node) error
	Flush() error
}
