package store

import (
    "context"
    "strings"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/utils"
)

// In-memory user and refresh-token storage, used when no database is
// configured. Semantics mirror the MySQL repositories: emails are
// unique and normalized to lower case, refresh tokens are stored as
// hashes and validated against expiry and revocation.

// Users returns this store viewed through the UserStore interface.
func (m *Memory) Users() UserStore { return memoryUsers{m} }

type memoryUsers struct{ m *Memory }

func (s memoryUsers) Create(_ context.Context, email, password, role string, bcryptCost int) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, bcryptCost)
    if err != nil {
        return 0, err
    }
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    for _, u := range s.m.users {
        if u.Email == email {
            return 0, ErrEmailExists
        }
    }
    u := model.User{
        ID:           s.m.nextSeq(),
        Email:        email,
        PasswordHash: hash,
        Role:         role,
        IsActive:     true,
        CreatedAt:    time.Now().UTC(),
    }
    u.UpdatedAt = u.CreatedAt
    s.m.users = append(s.m.users, u)
    return u.ID, nil
}

func (s memoryUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    for _, u := range s.m.users {
        if u.Email == email {
            return u, nil
        }
    }
    return model.User{}, ErrNotFound
}

func (s memoryUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    for _, u := range s.m.users {
        if u.ID == id {
            return u, nil
        }
    }
    return model.User{}, ErrNotFound
}

// Tokens returns this store viewed through the TokenStore interface.
func (m *Memory) Tokens() TokenStore { return memoryTokens{m} }

type memoryTokens struct{ m *Memory }

func (s memoryTokens) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    s.m.tokens = append(s.m.tokens, model.RefreshToken{
        ID:        s.m.nextSeq(),
        UserID:    userID,
        TokenHash: tokenHash,
        ExpiresAt: exp,
        CreatedAt: time.Now().UTC(),
    })
    return nil
}

func (s memoryTokens) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    for _, t := range s.m.tokens {
        if t.TokenHash != tokenHash {
            continue
        }
        if t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
            return 0, ErrNotFound
        }
        return t.UserID, nil
    }
    return 0, ErrNotFound
}

func (s memoryTokens) RevokeByHash(_ context.Context, tokenHash string) error {
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    now := time.Now().UTC()
    for i := range s.m.tokens {
        if s.m.tokens[i].TokenHash == tokenHash && s.m.tokens[i].RevokedAt == nil {
            s.m.tokens[i].RevokedAt = &now
        }
    }
    return nil
}

func (s memoryTokens) RevokeAllForUser(_ context.Context, userID uint64) error {
    s.m.mu.Lock()
    defer s.m.mu.Unlock()
    now := time.Now().UTC()
    for i := range s.m.tokens {
        if s.m.tokens[i].UserID == userID && s.m.tokens[i].RevokedAt == nil {
            s.m.tokens[i].RevokedAt = &now
        }
    }
    return nil
}

var (
    _ UserStore  = memoryUsers{}
    _ TokenStore = memoryTokens{}
)
