package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/advisorhub/revenue-engine/infrastructure/repository"
)

func fixedID() (string, error) { return "u1", nil }

func TestBuildUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		genID    func() (string, error)
		wantErr  error
	}{
		{name: "dados válidos", userName: " Ana ", email: " Ana@Office.com ", password: "segredo123", genID: fixedID},
		{name: "sem nome", email: "ana@office.com", password: "segredo123", genID: fixedID, wantErr: errMissingName},
		{name: "email sem arroba", userName: "Ana", email: "ana.office.com", password: "segredo123", genID: fixedID, wantErr: errInvalidEmail},
		{name: "senha curta", userName: "Ana", email: "ana@office.com", password: "123", genID: fixedID, wantErr: errWeakPassword},
		{
			name:     "falha ao gerar id",
			userName: "Ana",
			email:    "ana@office.com",
			password: "segredo123",
			genID:    func() (string, error) { return "", assert.AnError },
			wantErr:  assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := buildUser(tt.userName, tt.email, tt.password, now, tt.genID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, "Ana", user.Name)
			assert.Equal(t, "ana@office.com", user.Email)
			assert.True(t, user.Active)
			assert.Equal(t, now, user.CreatedAt)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestUpsertUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user, err := buildUser("Ana", "ana@office.com", "segredo123", now, fixedID)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO users \(id,name,email,password_hash,active,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) ON CONFLICT \(email\) DO UPDATE SET name = EXCLUDED.name`).
		WithArgs("u1", "Ana", "ana@office.com", user.PasswordHash, true, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, upsertUser(context.Background(), repository.NewGateway(db), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}
