package domain

// Message is one post in a corpus. Ids are monotonically increasing within a
// corpus; a zero ReplyTo or GroupID means "none". Immutable once observed.
type Message struct {
	ID       int64
	Text     string
	HasPhoto bool
	ReplyTo  int64 // id of the message this one replies to
	GroupID  int64 // shared by messages uploaded together as one gallery
}

// PhotoCandidate is a downloaded attachment staged for upload. It lives only
// for the duration of one product's processing; MessageID is unique within
// one resolution run.
type PhotoCandidate struct {
	Path      string
	MessageID int64
}
