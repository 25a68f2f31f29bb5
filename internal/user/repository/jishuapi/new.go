package jishuapi

import (
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/log"
)

const usersPath = "users"

// implRepository fronts the upstream users collection.
type implRepository struct {
	client *jishu.Client
	l      log.Logger
}

// New creates a user repository backed by the Jishu API.
func New(client *jishu.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
