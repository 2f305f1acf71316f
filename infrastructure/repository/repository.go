package repository

//go:generate mockgen -source=sales_entry.go -destination=mocks/sales_entry.go -package=mocks
//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks
//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("registro não encontrado")
	ErrDuplicateEmail = errors.New("email já cadastrado")
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
