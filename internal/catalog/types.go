package catalog

import (
	"errors"
	"strings"
	"time"
)

// The types below form a small user-management domain declared with
// annotations the way a DI, ORM or validation framework would expect.

// User is a persisted account.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Mailer sends notification emails.
type Mailer struct {
	From string
}

// NewMailer creates a mailer sending from the given address.
func NewMailer(from string) *Mailer {
	return &Mailer{From: from}
}

// Send delivers body to the given address.
func (m *Mailer) Send(to, body string) error {
	if to == "" {
		return errors.New("mailer: empty recipient")
	}
	return nil
}

// UserRepository stores users in memory.
type UserRepository struct {
	Table string
	users map[string]*User
}

// NewUserRepository creates an empty repository backed by table.
func NewUserRepository(table string) *UserRepository {
	return &UserRepository{Table: table, users: make(map[string]*User)}
}

// FindByEmail returns the user with the given email, or nil.
func (r *UserRepository) FindByEmail(email string) *User {
	return r.users[strings.ToLower(email)]
}

// Save stores u.
func (r *UserRepository) Save(u *User) error {
	if u == nil || u.Email == "" {
		return errors.New("repository: user without email")
	}
	r.users[strings.ToLower(u.Email)] = u
	return nil
}

// UserService registers and deactivates users.
type UserService struct {
	Repository *UserRepository
	Mailer     *Mailer
	Timeout    time.Duration
}

// NewUserService wires a service from its collaborators.
func NewUserService(repo *UserRepository, mailer *Mailer) *UserService {
	return &UserService{Repository: repo, Mailer: mailer, Timeout: 5 * time.Second}
}

// Register creates a user and sends a welcome mail.
func (s *UserService) Register(email, name string) (*User, error) {
	if existing := s.Repository.FindByEmail(email); existing != nil {
		return existing, nil
	}
	u := &User{ID: email, Email: email, Name: name, CreatedAt: time.Now()}
	if err := s.Repository.Save(u); err != nil {
		return nil, err
	}
	if s.Mailer != nil {
		if err := s.Mailer.Send(email, "welcome "+name); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Deactivate removes the user with the given email.
func (s *UserService) Deactivate(email string) {
	delete(s.Repository.users, strings.ToLower(email))
}
