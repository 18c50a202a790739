package supabase

import "github.com/supabase-community/postgrest-go"

// QueryBuilderFactory *supabase.Client или *postgrest.Client
type QueryBuilderFactory interface {
	From(table string) *postgrest.QueryBuilder
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
