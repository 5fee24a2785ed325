package main

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mvc/core/web"
)

type user struct {
	ID   string `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

// users is an in-memory user controller.
type users struct {
	mu   sync.RWMutex
	byID map[string]user
}

func newUsers() *users {
	return &users{byID: map[string]user{
		"1": {ID: "1", Name: "Ada"},
	}}
}

func (u *users) Index(req *web.Request, res *web.Response) error {
	u.mu.RLock()
	list := make([]user, 0, len(u.byID))
	for _, usr := range u.byID {
		list = append(list, usr)
	}
	u.mu.RUnlock()

	if req.Header("Accept") == web.ContentTypeMsgPack {
		return res.MsgPack(list)
	}
	return res.JSON(list)
}

func (u *users) Show(req *web.Request, res *web.Response) error {
	usr, ok := u.find(req.Param("id"))
	if !ok {
		return res.Status(http.StatusNotFound).Text("no such user")
	}
	return res.Render(web.NewView("users/show").With("id", usr.ID).With("name", usr.Name))
}

func (u *users) Card(req *web.Request, res *web.Response) error {
	usr, ok := u.find(req.Param("id"))
	if !ok {
		return res.Status(http.StatusNotFound).Text("no such user")
	}
	return res.Render(web.NewView("users/card").With("name", usr.Name))
}

func (u *users) Create(req *web.Request, res *web.Response) error {
	name := req.Query("name")
	if name == "" {
		return res.Status(http.StatusBadRequest).Text("name is required")
	}

	u.mu.Lock()
	id := uuid.NewString()
	u.byID[id] = user{ID: id, Name: name}
	u.mu.Unlock()

	return res.Status(http.StatusCreated).JSON(user{ID: id, Name: name})
}

func (u *users) find(id string) (user, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	usr, ok := u.byID[id]
	return usr, ok
}

func health(req *web.Request, res *web.Response) error {
	return res.Text("ok")
}
