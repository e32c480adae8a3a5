package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

func TestClient_ListPage(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		gotToken = r.Header.Get("access_token")
		fmt.Fprint(w, `{
			"data": [
				{"id": 1, "owner": "mina@club.kr", "title": "hello"},
				{"id": 2, "owner": "jun@club.kr", "title": "world"}
			],
			"meta": {"totalItems": 42}
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")

	res, err := c.ListPage(context.Background(), model.Board, 2, 10, "hello world")
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if res.TotalItems != 42 || len(res.Items) != 2 {
		t.Errorf("got total=%d items=%d, want 42/2", res.TotalItems, len(res.Items))
	}
	if res.Items[0].ID != 1 || res.Items[0].Owner != "mina@club.kr" {
		t.Errorf("first item = %+v", res.Items[0])
	}
	want := "/board?page=2&pageSize=10&q=hello+world"
	if gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if gotToken != "tok-123" {
		t.Errorf("access_token header = %q", gotToken)
	}
}

func TestClient_ListPage_NoTermOmitsQuery(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		fmt.Fprint(w, `{"data": [], "meta": {"totalItems": 0}}`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).ListPage(context.Background(), model.Japanese, 1, 1, ""); err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if gotPath != "/japanese?page=1&pageSize=1" {
		t.Errorf("request path = %q", gotPath)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrRequest},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tt.status)
		}))

		_, err := NewClient(srv.URL).GetItem(context.Background(), model.Board, 7)
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: got %v, want %v", tt.status, err, tt.want)
		}
		srv.Close()
	}
}

func TestClient_CreateItem_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/japanese" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		fmt.Fprint(w, `{"id": 9, "owner": "mina@club.kr", "title": "ことわざ"}`)
	}))
	defer srv.Close()

	item, err := NewClient(srv.URL).CreateItem(context.Background(), model.Japanese, Draft{Title: "ことわざ", Body: "猿も木から落ちる"})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID != 9 {
		t.Errorf("created id = %d, want 9", item.ID)
	}
}

func TestClient_CreateItem_Multipart(t *testing.T) {
	mediaPath := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(mediaPath, []byte("jpeg-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("title"); got != "field trip" {
			t.Errorf("title field = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("file part missing: %v", err)
			http.Error(w, "no file", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "photo.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}
		fmt.Fprint(w, `{"id": 3, "owner": "mina@club.kr", "mediaRef": "/media/3.jpg"}`)
	}))
	defer srv.Close()

	item, err := NewClient(srv.URL).CreateItem(context.Background(), model.Activities, Draft{
		Title:     "field trip",
		MediaPath: mediaPath,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.MediaRef != "/media/3.jpg" {
		t.Errorf("mediaRef = %q", item.MediaRef)
	}
}

func TestClient_DeleteItem(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).DeleteItem(context.Background(), model.Board, 12); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/board/12" {
		t.Errorf("request = %s %s, want DELETE /board/12", gotMethod, gotPath)
	}
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"token": "tok-abc", "nickname": "mina"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	session, err := c.Login(context.Background(), "mina@club.kr", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token != "tok-abc" || session.Nickname != "mina" || session.Email != "mina@club.kr" {
		t.Errorf("session = %+v", session)
	}
	if !session.LoggedIn() {
		t.Error("session should report logged in")
	}
}

func TestClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("access_token"); got != "tok-abc" {
			t.Errorf("access_token header = %q", got)
		}
		fmt.Fprint(w, `{"email": "mina@club.kr", "nickname": "mina"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-abc")
	me, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Email != "mina@club.kr" || me.Nickname != "mina" || me.Token != "tok-abc" {
		t.Errorf("identity = %+v", me)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).ListPage(ctx, model.Board, 1, 10, "")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, ErrRequest) {
		t.Errorf("cancellation should surface as %v, got %v", ErrRequest, err)
	}
}
