package game

import "go.uber.org/zap"

// Recorder observes session events. Implementations must not block.
type Recorder interface {
	GameStarted(sessionID, difficulty string, rounds int)
	HintUsed(sessionID, difficulty string, revealed int)
	RoundScored(sessionID string, r RoundResult)
	GameFinished(sessionID, difficulty string, s Summary)
}

// Recorders fans events out to several recorders.
type Recorders []Recorder

func (rs Recorders) GameStarted(id, difficulty string, rounds int) {
	for _, r := range rs {
		r.GameStarted(id, difficulty, rounds)
	}
}

func (rs Recorders) HintUsed(id, difficulty string, revealed int) {
	for _, r := range rs {
		r.HintUsed(id, difficulty, revealed)
	}
}

func (rs Recorders) RoundScored(id string, res RoundResult) {
	for _, r := range rs {
		r.RoundScored(id, res)
	}
}

func (rs Recorders) GameFinished(id, difficulty string, s Summary) {
	for _, r := range rs {
		r.GameFinished(id, difficulty, s)
	}
}

// LogRecorder writes session events to a zap logger.
type LogRecorder struct {
	log *zap.Logger
}

// NewLogRecorder returns a recorder logging at debug/info level.
func NewLogRecorder(log *zap.Logger) *LogRecorder {
	return &LogRecorder{log: log.Named("game")}
}

func (l *LogRecorder) GameStarted(id, difficulty string, rounds int) {
	l.log.Info("game started",
		zap.String("session_id", id),
		zap.String("difficulty", difficulty),
		zap.Int("rounds", rounds),
	)
}

func (l *LogRecorder) HintUsed(id, difficulty string, revealed int) {
	l.log.Debug("hint used",
		zap.String("session_id", id),
		zap.String("difficulty", difficulty),
		zap.Int("revealed", revealed),
	)
}

func (l *LogRecorder) RoundScored(id string, r RoundResult) {
	l.log.Debug("round scored",
		zap.String("session_id", id),
		zap.String("item", r.Item),
		zap.Int("correct", r.Correct),
		zap.Int("guessable", r.Guessable),
		zap.Int("hints_used", r.HintsUsed),
		zap.Int("earned", r.Earned),
	)
}

func (l *LogRecorder) GameFinished(id, difficulty string, s Summary) {
	l.log.Info("game finished",
		zap.String("session_id", id),
		zap.String("difficulty", difficulty),
		zap.Int("rounds", s.Rounds),
		zap.Int("score", s.Score),
		zap.Float64("accuracy", s.Accuracy),
	)
}
