package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/doctor-call/cli/internal/api"
)

// ErrWaitCancelled is reported when the user quits the wait view.
var ErrWaitCancelled = errors.New("wait cancelled")

type doctorsPolledMsg struct {
	result api.DoctorsResult
}

type waitTickMsg struct{}

// WaitModel polls the backend until a doctor connects, rendering progress.
type WaitModel struct {
	client   *api.Client
	maxWait  time.Duration
	interval time.Duration
	now      func() time.Time

	started  time.Time
	polls    int
	doctorID string
	err      error
	done     bool
}

// NewWaitModel builds a wait view that gives up after maxWait.
func NewWaitModel(client *api.Client, maxWait, interval time.Duration) WaitModel {
	if interval <= 0 {
		interval = time.Second
	}
	return WaitModel{
		client:   client,
		maxWait:  maxWait,
		interval: interval,
		now:      time.Now,
	}
}

// DoctorID returns the connected doctor once the wait succeeded.
func (m WaitModel) DoctorID() string { return m.doctorID }

// Err returns why the wait ended without a doctor.
func (m WaitModel) Err() error { return m.err }

func (m WaitModel) Init() tea.Cmd {
	return m.poll()
}

func (m WaitModel) poll() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return doctorsPolledMsg{result: client.GetConnectedDoctors(context.Background())}
	}
}

func (m WaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = m.now()
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = ErrWaitCancelled
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case doctorsPolledMsg:
		m.polls++
		res := msg.result
		if !res.Success {
			m.err = res.Err()
			m.done = true
			return m, tea.Quit
		}
		if len(res.Doctors) > 0 {
			m.doctorID = res.Doctors[0]
			m.done = true
			return m, tea.Quit
		}
		if m.now().Sub(m.started) >= m.maxWait {
			m.err = fmt.Errorf("%w after %s", api.ErrNoDoctorConnected, m.maxWait)
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return waitTickMsg{} })

	case waitTickMsg:
		return m, m.poll()
	}
	return m, nil
}

func (m WaitModel) View() string {
	switch {
	case m.doctorID != "":
		return Success("Doctor connected!") + "\n" + Detail("Doctor ID", m.doctorID) + "\n"
	case errors.Is(m.err, api.ErrNoDoctorConnected):
		return Failure("Timeout - no doctor connected") + "\n"
	case m.err != nil:
		return Failure("Error while waiting: %s", SanitizeOneLine(m.err.Error())) + "\n"
	}

	dots := m.polls % 4
	var b strings.Builder
	b.WriteString(Warn("Waiting for doctor to connect..."))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("   Will wait up to %s", m.maxWait)))
	b.WriteString("\n")
	b.WriteString("   Waiting" + strings.Repeat(".", dots) + strings.Repeat(" ", 3-dots))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("   q to cancel"))
	b.WriteString("\n")
	return b.String()
}
