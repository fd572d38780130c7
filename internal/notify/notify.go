// Package notify generates the app's ephemeral notifications and owns
// the bounded on-screen queue.
package notify

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindMotivation Kind = "motivation"
	KindReminder   Kind = "reminder"
)

// DefaultDuration applies when a notification does not set its own.
const DefaultDuration = 5 * time.Second

type Notification struct {
	ID       string
	Title    string
	Message  string
	Kind     Kind
	Duration time.Duration
}

// TTL is the on-screen lifetime of the notification.
func (n Notification) TTL() time.Duration {
	if n.Duration > 0 {
		return n.Duration
	}
	return DefaultDuration
}

var motivationalQuotes = []string{
	"O sucesso é a soma de pequenos esforços repetidos dia após dia.",
	"Sua única limitação é aquela que você impõe em sua própria mente.",
	"O esforço de hoje é a conquista de amanhã.",
	"Não pare até se orgulhar de você mesmo.",
	"Grandes coisas nunca vêm de zonas de conforto.",
	"Você é capaz de aprender qualquer coisa que se propuser.",
	"A disciplina é a ponte entre metas e realizações.",
	"Cada minuto de estudo é um degrau rumo ao seu sonho.",
}

var reminders = []string{
	"Que tal uma sessão de 25 minutos de foco agora?",
	"Hora de dar uma olhada nas suas metas do dia!",
	"Não deixe seu cronograma acumular, vamos estudar?",
	"A consistência é o segredo do aprendizado. Vamos focar?",
}

// Source draws notifications from the fixed text pools. The random
// source is injectable so tests can pin selection.
type Source struct {
	rnd *rand.Rand
}

func NewSource(rnd *rand.Rand) *Source {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Source{rnd: rnd}
}

// Periodic picks motivation with probability 0.7, reminder otherwise.
func (s *Source) Periodic() Notification {
	return s.pick(0.7)
}

// Manual picks motivation and reminder with equal probability.
func (s *Source) Manual() Notification {
	return s.pick(0.5)
}

func (s *Source) pick(motivationP float64) Notification {
	if s.rnd.Float64() < motivationP {
		return s.Motivation()
	}
	return s.Reminder()
}

func (s *Source) Motivation() Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    "Motivação do Momento",
		Message:  motivationalQuotes[s.rnd.Intn(len(motivationalQuotes))],
		Kind:     KindMotivation,
		Duration: 6 * time.Second,
	}
}

func (s *Source) Reminder() Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    "Lembrete de Foco",
		Message:  reminders[s.rnd.Intn(len(reminders))],
		Kind:     KindReminder,
		Duration: 8 * time.Second,
	}
}

// Fixed-content notifications for app events, independent of the pools.

func SessionComplete() Notification {
	return Notification{
		ID:      uuid.NewString(),
		Title:   "Sessão Finalizada!",
		Message: "Parabéns por completar seu bloco de estudo. Hora de uma pequena pausa!",
		Kind:    KindMotivation,
	}
}

func ScheduleGenerated() Notification {
	return Notification{
		ID:      uuid.NewString(),
		Title:   "Cronograma Gerado",
		Message: "A IA Coach planejou seu dia com maestria. Mãos à obra!",
		Kind:    KindReminder,
	}
}

func NotificationsEnabled() Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    "Notificações Ativas!",
		Message:  "Você receberá avisos motivacionais e lembretes de estudo agora.",
		Kind:     KindReminder,
		Duration: 4 * time.Second,
	}
}
