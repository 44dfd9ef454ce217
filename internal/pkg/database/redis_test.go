package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(ctx, "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HMSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	fields := map[string]interface{}{"lat": "10.5", "lng": "-74.2"}
	mock.ExpectHSet("driver:location:d1", fields).SetVal(2)

	err := client.HMSet(ctx, "driver:location:d1", fields)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetMembership(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectSAdd("drivers:transmitting", "d1").SetVal(1)
	mock.ExpectSMembers("drivers:transmitting").SetVal([]string{"d1"})
	mock.ExpectSRem("drivers:transmitting", "d1").SetVal(1)

	assert.NoError(t, client.SAdd(ctx, "drivers:transmitting", "d1"))

	members, err := client.SMembers(ctx, "drivers:transmitting")
	assert.NoError(t, err)
	assert.Equal(t, []string{"d1"}, members)

	assert.NoError(t, client.SRem(ctx, "drivers:transmitting", "d1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
