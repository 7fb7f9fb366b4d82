package web

import "embed"

// Assets holds the list/search and create/edit pages served at / and
// /create. Plain HTML and fetch calls against the blog endpoints.
//
//go:embed static/*
var Assets embed.FS
