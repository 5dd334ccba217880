package ipc

// CommandType names an operation the preview daemon accepts over the
// control socket.
type CommandType string

const (
	CommandStop     CommandType = "stop"
	CommandLoad     CommandType = "load"
	CommandSet      CommandType = "set"
	CommandPlay     CommandType = "play"
	CommandPause    CommandType = "pause"
	CommandStatus   CommandType = "status"
	CommandProgress CommandType = "progress"
)

// Command is the wire form of a daemon command. Args carry image paths
// for load; Kind and Progress carry the transition selector and the
// externally-driven progress value.
type Command struct {
	Type     CommandType `json:"type"`
	Args     []string    `json:"args,omitempty"`
	Kind     string      `json:"kind,omitempty"`
	Progress float64     `json:"progress"`
}

// PlayerInterface is what the socket server needs from the preview
// player.
type PlayerInterface interface {
	Status() PlayerStatus
	EnqueueCommand(Command)
}

// PlayerStatus is a snapshot of the preview loop.
type PlayerStatus struct {
	Kind     string  `json:"kind"`
	Progress float64 `json:"progress"`
	Playing  bool    `json:"playing"`
	ImageA   string  `json:"image_a"`
	ImageB   string  `json:"image_b"`
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// StatusResponse is the full /status payload.
type StatusResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Version string       `json:"version"`
	PID     int          `json:"pid"`
	Socket  string       `json:"socket"`
	Config  string       `json:"config"`
	Player  PlayerStatus `json:"player"`
}
