package domain

import "fmt"

// PollStatus is the inner data.code of a qrcode poll response.
type PollStatus int

const (
	PollStatusConfirmed  PollStatus = 0
	PollStatusExpired    PollStatus = 86038
	PollStatusScanned    PollStatus = 86090
	PollStatusNotScanned PollStatus = 86101
)

func (s PollStatus) String() string {
	switch s {
	case PollStatusConfirmed:
		return "confirmed"
	case PollStatusExpired:
		return "expired"
	case PollStatusScanned:
		return "scanned"
	case PollStatusNotScanned:
		return "not_scanned"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

type QRChallenge struct {
	LoginURL string
	Key      string
}

type PollResult struct {
	Status      PollStatus
	RedirectURL string
}

type LoginState int

const (
	LoginStateInitiated LoginState = iota
	LoginStatePolling
	LoginStateConfirmed
	LoginStateExpired
	LoginStateTimedOut
)

func (s LoginState) String() string {
	switch s {
	case LoginStateInitiated:
		return "initiated"
	case LoginStatePolling:
		return "polling"
	case LoginStateConfirmed:
		return "confirmed"
	case LoginStateExpired:
		return "expired"
	case LoginStateTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

func (s LoginState) Terminal() bool {
	return s == LoginStateConfirmed || s == LoginStateExpired || s == LoginStateTimedOut
}

type Transition struct {
	From   LoginState
	To     LoginState
	Status PollStatus
	// Notify is set when an informational status differs from the previous poll.
	Notify bool
}

// QRLoginMachine tracks the login state across poll responses.
type QRLoginMachine struct {
	state    LoginState
	last     PollStatus
	observed bool
}

func NewQRLoginMachine() *QRLoginMachine {
	return &QRLoginMachine{state: LoginStateInitiated}
}

func (m *QRLoginMachine) State() LoginState {
	return m.state
}

func (m *QRLoginMachine) Observe(status PollStatus) Transition {
	t := Transition{From: m.state, To: m.state, Status: status}
	if m.state.Terminal() {
		return t
	}

	changed := !m.observed || status != m.last
	m.last = status
	m.observed = true

	switch status {
	case PollStatusConfirmed:
		t.To = LoginStateConfirmed
	case PollStatusExpired:
		t.To = LoginStateExpired
	case PollStatusNotScanned, PollStatusScanned:
		t.To = LoginStatePolling
		t.Notify = changed
	default:
		t.To = LoginStatePolling
	}

	m.state = t.To
	return t
}

// Deadline moves a non-terminal machine to TimedOut.
func (m *QRLoginMachine) Deadline() Transition {
	t := Transition{From: m.state, To: m.state, Status: m.last}
	if !m.state.Terminal() {
		m.state = LoginStateTimedOut
		t.To = LoginStateTimedOut
	}
	return t
}

// Err maps terminal failure states to their error kind.
func (m *QRLoginMachine) Err() error {
	switch m.state {
	case LoginStateExpired:
		return ErrQRCodeExpired
	case LoginStateTimedOut:
		return ErrLoginTimeout
	default:
		return nil
	}
}
