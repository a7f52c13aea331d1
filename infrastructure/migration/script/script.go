// Script de provisionamento de assessores. Cada usuário é um tenant isolado,
// então criar o usuário é o que habilita o acesso à API.
//
//	go run ./infrastructure/migration/script -name "Ana" -email ana@office.com -password '...'
package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/infrastructure/repository"
	"github.com/advisorhub/revenue-engine/internal/config"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/pkg/log"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

const minPasswordLength = 8

var (
	errMissingName  = errors.New("nome do assessor é obrigatório")
	errInvalidEmail = errors.New("email inválido")
	errWeakPassword = errors.New("a senha deve conter ao menos 8 caracteres")
)

var upsertColumns = []string{"id", "name", "email", "password_hash", "active", "created_at", "updated_at"}

func setupLogger() {
	_, _ = log.Configure(logrus.InfoLevel.String())
	logrus.Info("Iniciando provisionamento de assessor...")
}

// buildUser valida os dados e monta o usuário com a senha já em hash
func buildUser(name, email, password string, now time.Time, generateID func() (string, error)) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, errMissingName
	}
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return nil, errInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, errWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := generateID()
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// upsertUser grava o usuário; email já cadastrado tem nome e senha atualizados
// e mantém o id, preservando o tenant e seus dados
func upsertUser(ctx context.Context, gw *gateway.Gateway, user *domain.User) error {
	_, err := gw.Insert("users", upsertColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Active, user.CreatedAt, user.UpdatedAt).
		OnConflict([]string{"email"}, "name", "password_hash", "active", "updated_at").
		Exec(ctx)
	return err
}

func main() {
	setupLogger()

	name := flag.String("name", "", "nome do assessor")
	email := flag.String("email", "", "email de login")
	password := flag.String("password", "", "senha inicial")
	flag.Parse()

	user, err := buildUser(*name, *email, *password, time.Now(), utils.GenerateID)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO nos dados do assessor")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := upsertUser(ctx, repository.NewGateway(conn), user); err != nil {
		logrus.WithError(err).Fatal("ERRO ao gravar assessor")
	}

	logrus.WithFields(logrus.Fields{
		"user_email": user.Email,
		"elapsed":    time.Since(startTime).String(),
	}).Info("Assessor provisionado com sucesso")
}
