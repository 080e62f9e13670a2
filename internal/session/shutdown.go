package session

import (
	"context"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/log"
)

// shutdownGuard makes the teardown single-fire for the process lifetime.
type shutdownGuard struct {
	once sync.Once
}

// SurveyConfirm is the production Confirmer, backed by an interactive
// prompt.
func SurveyConfirm(message string, def bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// Shutdown stops the container and offers removal. It runs at most once no
// matter how many interrupts arrive; stop always precedes the removal
// prompt so removal is never attempted on a running container. Stop and
// remove failures are surfaced but the teardown still completes.
func (s *Session) Shutdown(ctx context.Context) {
	s.shutdown.once.Do(func() {
		name := s.Config.ContainerName
		log.Info("Stopping container", "name", name)
		if err := s.Runtime.Stop(ctx, name); err != nil {
			log.Error("Failed to stop container", "name", name, "error", err)
		}
		s.record("stop", "")

		if !s.confirmRemoval(name) {
			log.Info("Container kept; remove it later with",
				"command", "docker rm "+name)
			s.record("keep", "")
			return
		}

		log.Info("Removing container", "name", name)
		if err := s.Runtime.Remove(ctx, name); err != nil {
			log.Error("Failed to remove container", "name", name, "error", err)
			return
		}
		s.record("remove", "")
	})
}

// confirmRemoval resolves the yes/no removal decision. Anything but an
// explicit yes keeps the container.
func (s *Session) confirmRemoval(name string) bool {
	if s.AutoConfirm {
		return true
	}
	confirm := s.Confirm
	if confirm == nil {
		confirm = SurveyConfirm
	}
	ok, err := confirm("Remove container "+name+"?", false)
	if err != nil {
		log.Warn("Could not read removal confirmation, keeping container", "error", err)
		return false
	}
	return ok
}
