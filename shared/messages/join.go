package messages

// JoinRequest is sent by a client after connecting.
type JoinRequest struct {
	Version string
	Name    string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	ServerName string
	TickRate   int
	Level      string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
