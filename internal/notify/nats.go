package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectTeamAssigned = "ups.team.assigned"
	SubjectWin          = "ups.game.win"
	SubjectPeriodReset  = "ups.leaderboard.reset"
)

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

// Envelope wraps every announcement published to the broker.
type Envelope struct {
	ID        string          `json:"id"`
	Subject   string          `json:"subject"`
	ChannelID string          `json:"channel_id"`
	SentAt    time.Time       `json:"sent_at"`
	Text      string          `json:"text"`
	Ephemeral bool            `json:"ephemeral"`
	UserID    string          `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data"`
}

type Publisher struct {
	conn      Conn
	channelID string
	now       func() time.Time
	logger    *slog.Logger
}

func NewPublisher(conn Conn, channelID string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		conn:      conn,
		channelID: channelID,
		now:       time.Now,
		logger:    logger,
	}
}

func BrokerConnect(url string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("ups-and-downs"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}

	return nc, nil
}

type teamAssignedData struct {
	UserID string `json:"user_id"`
	Team   string `json:"team"`
}

type winData struct {
	Winner   string `json:"winner"`
	UpWins   int    `json:"up_wins"`
	DownWins int    `json:"down_wins"`
}

type periodResetData struct {
	Period string `json:"period"`
}

func (p *Publisher) TeamAssigned(ctx context.Context, user domain.User) error {
	data := teamAssignedData{UserID: string(user.ID), Team: string(user.Team)}
	return p.publish(ctx, SubjectTeamAssigned, TeamText(user.Team), string(user.ID), data)
}

func (p *Publisher) Win(ctx context.Context, win domain.Win) error {
	data := winData{Winner: string(win.Winner), UpWins: win.UpWins, DownWins: win.DownWins}
	return p.publish(ctx, SubjectWin, WinText(win), "", data)
}

func (p *Publisher) PeriodReset(ctx context.Context, reset domain.PeriodReset) error {
	data := periodResetData{Period: reset.Period}
	return p.publish(ctx, SubjectPeriodReset, PeriodResetText(reset), "", data)
}

func (p *Publisher) publish(ctx context.Context, subject, text, ephemeralTo string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s data: %w", subject, err)
	}

	env := Envelope{
		ID:        uuid.NewString(),
		Subject:   subject,
		ChannelID: p.channelID,
		SentAt:    p.now().UTC(),
		Text:      text,
		Ephemeral: ephemeralTo != "",
		UserID:    ephemeralTo,
		Data:      raw,
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", subject, err)
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	p.logger.DebugContext(ctx, "announcement published", "subject", subject, "id", env.ID)

	return nil
}
