package ws

import (
	"log"
	"net/http"
	"time"

	"farmlink_front_end/internal/cart"
	"farmlink_front_end/internal/models"
	"farmlink_front_end/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

type CartSocket struct {
	reconciler *cart.Reconciler
	resolver   *session.Resolver
}

func NewCartSocket(reconciler *cart.Reconciler, resolver *session.Resolver) *CartSocket {
	return &CartSocket{reconciler: reconciler, resolver: resolver}
}

// Handle pousse l'instantané du panier à chaque re-fetch réussi, et coupe
// la connexion quand la session retombe en anonyme. La boucle s'arrête
// avec le contexte de la requête : rien ne survit au démontage de la vue.
func (s *CartSocket) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// tampon de 1 : on ne pousse que le dernier instantané, les
	// intermédiaires n'intéressent personne
	updates := make(chan []models.CartLine, 1)
	unsubscribeCart := s.reconciler.Subscribe(func(lines []models.CartLine) {
		// on jette le plus vieux et jamais on ne bloque : si un autre
		// callback remplit le tampon entre le drain et l'envoi, ou si la
		// boucle est déjà partie, cet instantané est simplement perdu
		select {
		case updates <- lines:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- lines:
			default:
			}
		}
	})
	defer unsubscribeCart()

	loggedOut := make(chan struct{}, 1)
	unsubscribeSession := s.resolver.Subscribe(func(current models.Session) {
		if current.Status == models.StatusAnonymous {
			select {
			case loggedOut <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribeSession()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})
	s.push(conn, s.reconciler.Lines())

	done := c.Request.Context().Done()
	for {
		select {
		case lines := <-updates:
			if !s.push(conn, lines) {
				return
			}
		case <-loggedOut:
			conn.WriteJSON(map[string]interface{}{"type": "logged_out"})
			return
		case <-done:
			return
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *CartSocket) push(conn *websocket.Conn, lines []models.CartLine) bool {
	response := map[string]interface{}{
		"type":     "cart_updated",
		"items":    lines,
		"subtotal": models.Subtotal(lines),
		"count":    len(lines),
	}
	if err := conn.WriteJSON(response); err != nil {
		log.Printf("❌ Erreur envoi WebSocket: %v", err)
		return false
	}
	return true
}
