package notification

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@innatastudio.com",
		fromName: "Innata Studio",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestEnqueue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Enqueue(ctx, "user@example.com", "User", TypeWelcome, "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueueRedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.Enqueue(ctx, "user@example.com", "User", TypeWelcome, "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendReservationConfirmedPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	var captured []byte
	mock.CustomMatch(func(expected, actual []interface{}) error {
		captured = actual[2].([]byte)
		return nil
	}).ExpectLPush(queueKey, "ignored").SetVal(1)

	svc := newTestService(db)

	startsAt := time.Date(2025, time.June, 4, 9, 0, 0, 0, time.UTC)
	err := svc.SendReservationConfirmed(ctx, "user@example.com", "Daniela", "Rhythm Ride", startsAt)
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal(captured, &job))
	assert.Equal(t, TypeReservationConfirmed, job.Type)
	assert.Equal(t, "user@example.com", job.To)
	assert.Contains(t, job.Subject, "Rhythm Ride")
	assert.Contains(t, job.Body, "Jun 4, 2025")
}

func TestSendReservationCancelledMentionsCredit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	var captured []byte
	mock.CustomMatch(func(expected, actual []interface{}) error {
		captured = actual[2].([]byte)
		return nil
	}).ExpectLPush(queueKey, "ignored").SetVal(1)

	svc := newTestService(db)

	startsAt := time.Date(2025, time.June, 4, 9, 0, 0, 0, time.UTC)
	err := svc.SendReservationCancelled(ctx, "user@example.com", "Daniela", "Rhythm Ride", startsAt, false)
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal(captured, &job))
	assert.Equal(t, TypeReservationCancelled, job.Type)
	assert.Contains(t, job.Body, "not returned")
}

func TestSendPenaltyApplied(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	var captured []byte
	mock.CustomMatch(func(expected, actual []interface{}) error {
		captured = actual[2].([]byte)
		return nil
	}).ExpectLPush(queueKey, "ignored").SetVal(1)

	svc := newTestService(db)

	err := svc.SendPenaltyApplied(ctx, "user@example.com", "Daniela", "Rhythm Ride", "Power Hour")
	require.NoError(t, err)

	var job Job
	require.NoError(t, json.Unmarshal(captured, &job))
	assert.Equal(t, TypePenaltyApplied, job.Type)
	assert.Contains(t, job.Body, "Rhythm Ride")
	assert.Contains(t, job.Body, "Power Hour")
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(5)

	svc := newTestService(db)

	assert.Equal(t, int64(5), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
