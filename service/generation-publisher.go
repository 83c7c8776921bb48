package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"kmteams/utils"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type GenerationEvent struct {
	Year           int       `json:"year"`
	Generated      int       `json:"generated"`
	TotalEntries   int       `json:"total_entries"`
	Excluded       int       `json:"excluded"`
	Leftovers      int       `json:"leftovers"`
	Deleted        int64     `json:"deleted"`
	WarningCount   int       `json:"warning_count"`
	NonHomogeneous int       `json:"non_homogeneous"`
	Timestamp      time.Time `json:"timestamp"`
}

// KafkaGenerationPublisher announces finished runs so that downstream
// consumers (start lists, result sheets) can refresh their team data.
type KafkaGenerationPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaGenerationPublisher(writer *kafka.Writer) *KafkaGenerationPublisher {
	return &KafkaGenerationPublisher{writer: writer, now: time.Now}
}

func (p *KafkaGenerationPublisher) Publish(ctx context.Context, report *GenerationReport) error {
	event := toGenerationEvent(report, p.now())
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(report.Year)),
		Value: value,
	})
}

func toGenerationEvent(report *GenerationReport, timestamp time.Time) GenerationEvent {
	nonHomogeneous := 0
	for _, group := range report.Groups {
		nonHomogeneous += len(utils.Filter(group.Teams, func(team *TeamDiagnostic) bool {
			return team.Persisted && !team.Homogeneous
		}))
	}
	return GenerationEvent{
		Year:           report.Year,
		Generated:      report.GeneratedCount,
		TotalEntries:   report.TotalEntries,
		Excluded:       report.ExcludedCount,
		Leftovers:      report.LeftoverCount,
		Deleted:        report.DeletedCount,
		WarningCount:   len(report.Warnings),
		NonHomogeneous: nonHomogeneous,
		Timestamp:      timestamp,
	}
}
