package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/service"
)

var errStore = errors.New("db down")

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignUp_Created(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/sign-up", `{"username":"alice","email":"alice@x.com","password":"Passw0rd","repeat_password":"Passw0rd"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
	if auth.lastSignUp.Username != "alice" || auth.lastSignUp.Email != "alice@x.com" {
		t.Fatalf("unexpected input forwarded: %+v", auth.lastSignUp)
	}
}

func TestSignUp_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      &service.ValidationError{Field: "username", Message: "username must be 3-10 alphanumeric characters"},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: "username must be 3-10 alphanumeric characters",
		},
		{
			name:     "conflict",
			err:      service.ErrConflict,
			wantCode: http.StatusConflict,
			wantBody: "this user already exists",
		},
		{
			name:     "store failure",
			err:      errStore,
			wantCode: http.StatusInternalServerError,
			wantBody: "error while accessing database",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{signUpErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(r, "/sign-up", `{"username":"bob","email":"bob@x.com","password":"pw123","repeat_password":"pw123"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if w.Body.String() != tc.wantBody {
				t.Fatalf("body: got %q, want %q", w.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestSignUp_MalformedBody(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := postJSON(r, "/sign-up", `{"username":`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed body, got %d", w.Code)
	}
}

func TestSignIn_ReturnsUsernameAndToken(t *testing.T) {
	auth := &mockAuth{signInResult: service.SignInResult{Username: "alice", Token: "tok123"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/sign-in", `{"email":"alice@x.com","password":"Passw0rd"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["username"] != "alice" || m["token"] != "tok123" {
		t.Fatalf("unexpected response: %v", m)
	}
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{signInErr: service.ErrInvalidCredentials}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/sign-in", `{"email":"ghost@x.com","password":"wrong"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404 (body=%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "invalid email or password" {
		t.Fatalf("body: got %q", w.Body.String())
	}
}

func TestSignIn_MissingField(t *testing.T) {
	auth := &mockAuth{signInErr: &service.ValidationError{Field: "email", Message: "email is required"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/sign-in", `{"password":"pw"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", w.Code)
	}
	if w.Body.String() != "email is required" {
		t.Fatalf("body: got %q", w.Body.String())
	}
}
