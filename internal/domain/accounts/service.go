package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ask-astro/internal/domain/plans"
	"ask-astro/internal/ports/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("account not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrAlreadySigned = errors.New("user already has an account")
)

// QuestionCounter es lo que accounts necesita del chat: reiniciar el contador al registrarse.
type QuestionCounter interface {
	ResetQuestionCount(ctx context.Context, userID string) error
}

type Service struct {
	repo     Repository
	issuer   auth.TokenIssuer
	counter  QuestionCounter
	validate *validator.Validate
	now      func() time.Time
}

// NewService: issuer puede ser nil (modo dev), en ese caso no se emiten tokens.
func NewService(repo Repository, issuer auth.TokenIssuer, counter QuestionCounter) *Service {
	return &Service{
		repo:     repo,
		issuer:   issuer,
		counter:  counter,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Session es lo que devuelven guest y signup.
type Session struct {
	UserID  string
	Token   string // vacío en modo dev
	Account *Account
}

// StartGuest genera un user id nuevo para un visitante sin cuenta.
func (s *Service) StartGuest(_ context.Context) (Session, error) {
	id := uuid.NewString()
	token, err := s.issue(auth.Claims{UserID: id, Guest: true})
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: id, Token: token}, nil
}

type SignupInput struct {
	// Si viene, la cuenta adopta el id del guest (su historial y perfil).
	GuestID string
	Email   string `validate:"required,email,max=254"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.GuestID = strings.TrimSpace(in.GuestID)
	if err := s.validate.Struct(in); err != nil {
		return Session{}, fmt.Errorf("%w: email", ErrInvalidInput)
	}

	id := in.GuestID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := s.repo.GetByID(ctx, id); err == nil {
		return Session{}, ErrAlreadySigned
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}

	now := s.now()
	a := Account{
		ID:        id,
		Email:     in.Email,
		Plan:      plans.PlanFree,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Session{}, err
	}

	if s.counter != nil {
		if err := s.counter.ResetQuestionCount(ctx, id); err != nil {
			return Session{}, fmt.Errorf("reset question count: %w", err)
		}
	}

	token, err := s.issue(auth.Claims{UserID: id, Email: a.Email})
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: id, Token: token, Account: &a}, nil
}

func (s *Service) Get(ctx context.Context, userID string) (Account, error) {
	if strings.TrimSpace(userID) == "" {
		return Account{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, userID)
}

// ChangePlan cambia el plan de una cuenta registrada. No hay cobro real.
func (s *Service) ChangePlan(ctx context.Context, userID string, plan plans.PlanID) (Account, error) {
	if _, ok := plans.Lookup(plan); !ok {
		return Account{}, fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, plan)
	}

	a, err := s.Get(ctx, userID)
	if err != nil {
		return Account{}, err
	}
	if a.Plan == plan {
		return a, nil
	}

	a.Plan = plan
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// PlanOf implementa plans.PlanLookup. Sin cuenta => PlanFree.
func (s *Service) PlanOf(ctx context.Context, userID string) (plans.PlanID, error) {
	a, err := s.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return plans.PlanFree, nil
	}
	if err != nil {
		return "", err
	}
	return a.Plan, nil
}

func (s *Service) issue(c auth.Claims) (string, error) {
	if s.issuer == nil {
		return "", nil
	}
	token, err := s.issuer.Issue(c)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
