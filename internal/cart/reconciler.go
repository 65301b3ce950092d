package cart

import (
	"context"
	"fmt"
	"sync"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/models"
)

// Backend est la partie du client REST dont le panier a besoin
type Backend interface {
	FetchCart(ctx context.Context) ([]models.CartLine, error)
	AddToCart(ctx context.Context, farmerProductID int64, quantity int) error
	UpdateCartQuantity(ctx context.Context, lineID int64, quantity int) error
	RemoveCartLine(ctx context.Context, lineID int64) error
	FarmerProductRefs(ctx context.Context) ([]models.FarmerProductRef, error)
}

// Reconciler tient l'instantané local du panier. Le backend est la seule
// source de vérité (les prix négociés bougent hors de notre contrôle) :
// chaque mutation réussie est suivie d'un re-fetch intégral, jamais d'un
// patch arithmétique local.
type Reconciler struct {
	mu          sync.Mutex
	backend     Backend
	lines       []models.CartLine
	subscribers map[int]func([]models.CartLine)
	nextSubID   int
}

func NewReconciler(b Backend) *Reconciler {
	return &Reconciler{
		backend:     b,
		subscribers: map[int]func([]models.CartLine){},
	}
}

// Lines retourne une copie de l'instantané courant
func (r *Reconciler) Lines() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CartLine(nil), r.lines...)
}

// Subtotal recalcule Σ(prix × quantité) sur l'instantané courant ; 0 pour
// un panier vide. Jamais mis en cache entre deux mutations.
func (r *Reconciler) Subtotal() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.Subtotal(r.lines)
}

// Refresh remplace l'instantané par l'état qui fait foi côté backend
func (r *Reconciler) Refresh(ctx context.Context) ([]models.CartLine, error) {
	lines, err := r.backend.FetchCart(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.lines = lines
	r.mu.Unlock()
	r.notify(lines)
	return append([]models.CartLine(nil), lines...), nil
}

// Add crée une ligne puis re-fetch. Quantité < 1 : rejet avant toute
// requête. Token absent : AuthError levée par le client avant la requête.
func (r *Reconciler) Add(ctx context.Context, farmerProductID int64, quantity int) error {
	if quantity < 1 {
		return &backend.ValidationError{Message: "la quantité doit être au moins 1"}
	}
	if err := r.backend.AddToCart(ctx, farmerProductID, quantity); err != nil {
		return err
	}
	_, err := r.Refresh(ctx)
	return err
}

// SetQuantity ne descend jamais sous 1 : l'UI doit proposer la
// suppression, pas le zéro. Rejet avant toute requête.
func (r *Reconciler) SetQuantity(ctx context.Context, lineID int64, quantity int) error {
	if quantity < 1 {
		return &backend.ValidationError{Message: "la quantité doit rester au moins 1 — supprimez la ligne à la place"}
	}
	if err := r.backend.UpdateCartQuantity(ctx, lineID, quantity); err != nil {
		return err
	}
	_, err := r.Refresh(ctx)
	return err
}

func (r *Reconciler) Remove(ctx context.Context, lineID int64) error {
	if err := r.backend.RemoveCartLine(ctx, lineID); err != nil {
		return err
	}
	_, err := r.Refresh(ctx)
	return err
}

// ResolveLine retrouve l'identité concrète ajoutable au panier pour un
// couple (produit, fermier) au prix affiché. Le prix fait partie de la
// clé : si l'offre a changé entre l'affichage et le clic, on échoue au
// lieu d'ajouter à un autre prix.
func (r *Reconciler) ResolveLine(ctx context.Context, productID, farmerID int64, bargainPrice float64) (int64, error) {
	refs, err := r.backend.FarmerProductRefs(ctx)
	if err != nil {
		return 0, err
	}
	for _, ref := range refs {
		if ref.ProductID == productID && ref.FarmerID == farmerID && ref.BargainPrice == bargainPrice {
			return ref.FarmerProductID, nil
		}
	}
	return 0, fmt.Errorf("offre introuvable pour le produit %d (fermier %d)", productID, farmerID)
}

// Subscribe enregistre un callback appelé après chaque re-fetch réussi
func (r *Reconciler) Subscribe(fn func([]models.CartLine)) func() {
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

func (r *Reconciler) notify(lines []models.CartLine) {
	r.mu.Lock()
	callbacks := make([]func([]models.CartLine), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		callbacks = append(callbacks, fn)
	}
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(append([]models.CartLine(nil), lines...))
	}
}
