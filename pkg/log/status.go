package log

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//Status line identifiers printed by the command line
const (
	StatusTaskSent     = "TaskSent"
	StatusTaskFinished = "TaskFinished"
	StatusNoTasks      = "NoTasks"
)

var statusMessages = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: StatusTaskSent, Other: `Task "{{.Task}}" sent to queue (id: {{.Id}}, job: {{.Job}})`},
		{ID: StatusTaskFinished, Other: `Task "{{.Task}}" finished synchronously, result: {{.Result}}`},
		{ID: StatusNoTasks, Other: "No tasks registered"},
	},
	language.Serbian: {
		{ID: StatusTaskSent, Other: `Zadatak "{{.Task}}" poslat u red (id: {{.Id}}, posao: {{.Job}})`},
		{ID: StatusTaskFinished, Other: `Zadatak "{{.Task}}" završen sinhrono, rezultat: {{.Result}}`},
		{ID: StatusNoTasks, Other: "Nema registrovanih zadataka"},
	},
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func statusBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)

		for tag, messages := range statusMessages {
			if err := bundle.AddMessages(tag, messages...); err != nil {
				Logger().Error(err)
			}
		}
	})

	return bundle
}

//Localizer renders status lines in the first supported language of langs
type Localizer struct {
	*i18n.Localizer
}

//NewLocalizer creates Localizer for given language preferences (e.g. "sr", "en-US")
func NewLocalizer(langs ...string) *Localizer {
	return &Localizer{i18n.NewLocalizer(statusBundle(), langs...)}
}

//Status renders status line. Falls back to message id when rendering fails
func (l *Localizer) Status(id string, data map[string]interface{}) string {
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})

	if err != nil {
		Logger().Error(err)

		return id
	}

	return msg
}
