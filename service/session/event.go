package session

// Event types published on the session lifecycle bus.
const (
	EventCommandEnded = "commandEnded"
	EventClosed       = "closed"
)

// CommandEnded signals that a session finished running a command. The
// raw output travels with the signal; sessions never hand results back
// through a return value. SessionID pins the signal to the session
// instance that ran the command, so listeners can tell a live session
// apart from a closed one recreated under the same name.
type CommandEnded struct {
	SessionID   string `json:"sessionID"`
	SessionName string `json:"sessionName"`
	Command     string `json:"command"`
	Output      string `json:"output"`
	Status      int    `json:"status"`
}

// Closed signals that a session left the pool.
type Closed struct {
	SessionName string `json:"sessionName"`
}
