package ent

// Generated code is not committed; run `go generate ./ent` after
// changing any schema. sql/lock enables the ForUpdate row locks the
// edit engine relies on.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
