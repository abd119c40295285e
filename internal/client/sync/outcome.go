package sync

import (
	"fmt"
	"strings"
)

// Сообщения Outcome, на которые может опираться вызывающий код
const (
	MessageOffline = "offline"
	MessageBusy    = "sync already in progress"
)

// Outcome is the summary of one pass or of a full sync. It is never
// persisted by the reconciler; callers decide what to show or store.
type Outcome struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
	Errors  int    `json:"errors"`
	Success bool   `json:"success"`
}

// Offline reports whether the pass was skipped because the remote side was unreachable.
func (o Outcome) Offline() bool {
	return o == offlineOutcome()
}

func offlineOutcome() Outcome {
	return Outcome{Success: false, Message: MessageOffline}
}

func busyOutcome() Outcome {
	return Outcome{Success: false, Message: MessageBusy}
}

func passOutcome(pass string, synced, errs int, note string) Outcome {
	msg := fmt.Sprintf("%s: %d synced, %d error(s)", pass, synced, errs)
	if note != "" {
		msg += " (" + note + ")"
	}
	return Outcome{
		Success: errs == 0,
		Synced:  synced,
		Errors:  errs,
		Message: msg,
	}
}

func failedOutcome(pass string, err error) Outcome {
	return Outcome{
		Success: false,
		Errors:  1,
		Message: fmt.Sprintf("%s: %v", pass, err),
	}
}

// merge объединяет результаты двух проходов: счетчики суммируются, success конъюнкция
func merge(a, b Outcome) Outcome {
	msgs := make([]string, 0, 2)
	for _, m := range []string{a.Message, b.Message} {
		if m != "" {
			msgs = append(msgs, m)
		}
	}
	return Outcome{
		Success: a.Success && b.Success,
		Synced:  a.Synced + b.Synced,
		Errors:  a.Errors + b.Errors,
		Message: strings.Join(msgs, "; "),
	}
}
