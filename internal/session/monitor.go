package session

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var attachPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

var attachCmdStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true)

// PrintAttachHint tells the operator how to open a shell in the running
// container and how to end the session.
func (s *Session) PrintAttachHint() {
	attach := attachCmdStyle.Render(fmt.Sprintf("docker exec -it %s bash", s.Config.ContainerName))
	body := fmt.Sprintf(
		"Workspace %s is up.\n\nOpen a shell in another terminal:\n  %s\n\nPress Ctrl+C here to stop the session.",
		s.Config.ContainerName, attach,
	)
	fmt.Println(attachPanelStyle.Render(body))
}

// WaitForInterrupt parks the orchestrating process until the operator
// interrupts it. The container runs detached and does not need us; the
// wait only keeps a point of control alive for teardown.
func (s *Session) WaitForInterrupt(interrupts <-chan os.Signal) {
	<-interrupts
}
