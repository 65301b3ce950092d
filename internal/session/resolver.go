package session

import (
	"context"
	"log"
	"sync"

	"farmlink_front_end/internal/models"
)

// MeClient est la partie du client backend dont le resolver a besoin
type MeClient interface {
	Me(ctx context.Context) (*models.User, error)
}

// TokenStore est le store de credential partagé du processus
type TokenStore interface {
	Get() string
	Clear() error
}

// Resolver possède la session : les autres composants la lisent, lui seul
// la fait transiter. Politique fail-closed : le moindre doute sur la
// validité du token retombe en anonyme plutôt que de garder une session
// douteuse.
type Resolver struct {
	mu          sync.Mutex
	client      MeClient
	tokens      TokenStore
	current     models.Session
	generation  uint64
	subscribers map[int]func(models.Session)
	nextSubID   int
}

func NewResolver(client MeClient, tokens TokenStore) *Resolver {
	return &Resolver{
		client:      client,
		tokens:      tokens,
		current:     models.Session{Status: models.StatusLoading},
		subscribers: map[int]func(models.Session){},
	}
}

// Current retourne une copie de la session courante
func (r *Resolver) Current() models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Subscribe enregistre un callback appelé à chaque transition, et
// retourne la fonction de désabonnement
func (r *Resolver) Subscribe(fn func(models.Session)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

// Resolve réhydrate la session depuis le token stocké. Sans token :
// anonyme immédiatement. Avec token : GET /auth/me ; tout échec (réseau,
// 4xx) efface le token et retombe en anonyme. Un Login/Logout survenu
// pendant la requête rend le résultat caduc (garde de génération).
func (r *Resolver) Resolve(ctx context.Context) models.Session {
	r.mu.Lock()
	gen := r.generation
	tok := r.tokens.Get()
	if tok == "" {
		session := r.setLocked(models.Session{Status: models.StatusAnonymous})
		r.mu.Unlock()
		r.notify(session)
		return session
	}
	r.mu.Unlock()

	user, err := r.client.Me(ctx)

	r.mu.Lock()
	if r.generation != gen {
		// un login ou logout est passé devant : son état gagne
		current := r.current
		r.mu.Unlock()
		return current
	}
	var session models.Session
	if err != nil {
		log.Printf("⚠️ Réhydratation de session refusée, retour en anonyme: %v", err)
		if clearErr := r.tokens.Clear(); clearErr != nil {
			log.Printf("⚠️ Impossible d'effacer le token: %v", clearErr)
		}
		session = r.setLocked(models.Session{Status: models.StatusAnonymous})
	} else {
		session = r.setLocked(models.Session{
			Token:  tok,
			User:   user,
			Status: models.StatusAuthenticated,
		})
	}
	r.mu.Unlock()
	r.notify(session)
	return session
}

// Login fixe la session authentifiée. L'échange d'identifiants et le
// stockage du token ont déjà eu lieu côté appelant (formulaire de login).
func (r *Resolver) Login(user models.User) models.Session {
	r.mu.Lock()
	r.generation++
	session := r.setLocked(models.Session{
		Token:  r.tokens.Get(),
		User:   &user,
		Status: models.StatusAuthenticated,
	})
	r.mu.Unlock()
	r.notify(session)
	return session
}

// Logout efface token et session, de façon synchrone et idempotente
func (r *Resolver) Logout() models.Session {
	r.mu.Lock()
	r.generation++
	if err := r.tokens.Clear(); err != nil {
		log.Printf("⚠️ Impossible d'effacer le token au logout: %v", err)
	}
	session := r.setLocked(models.Session{Status: models.StatusAnonymous})
	r.mu.Unlock()
	r.notify(session)
	return session
}

// setLocked remplace la session courante ; appelant détient le mutex
func (r *Resolver) setLocked(session models.Session) models.Session {
	r.current = session
	return session
}

func (r *Resolver) notify(session models.Session) {
	r.mu.Lock()
	callbacks := make([]func(models.Session), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		callbacks = append(callbacks, fn)
	}
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(session)
	}
}
