package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/ozzus/footdash/internal/api/http/views"
)

func init() {
	gob.Register(views.Alert{})
}

// FlashStore carries one-shot alerts across a redirect in a signed cookie.
type FlashStore struct {
	store sessions.Store
	name  string
}

func NewFlashStore(secret, cookieName string, secure bool) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &FlashStore{store: store, name: cookieName}
}

func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, level, message string) error {
	session, err := f.store.Get(r, f.name)
	if err != nil && session == nil {
		return err
	}

	session.AddFlash(views.Alert{Level: level, Message: message})
	return session.Save(r, w)
}

// Pop returns and clears pending alerts. A missing or tampered cookie yields none.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []views.Alert {
	session, err := f.store.Get(r, f.name)
	if err != nil || session == nil {
		return nil
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}

	alerts := make([]views.Alert, 0, len(flashes))
	for _, v := range flashes {
		if a, ok := v.(views.Alert); ok {
			alerts = append(alerts, a)
		}
	}
	_ = session.Save(r, w)

	return alerts
}
