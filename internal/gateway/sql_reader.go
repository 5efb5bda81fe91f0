package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"ecommerce-analytics/internal/domain"
)

// DefaultQuery selects the whole transactions table; the result columns are
// resolved with the same aliases as CSV headers.
const DefaultQuery = "SELECT * FROM transactions"

// SQLTransactionRepository reads transactions from a MySQL/MariaDB, PostgreSQL
// or SQLite database.
type SQLTransactionRepository struct {
	columns Columns
	query   string
	timeout time.Duration
}

// NewSQLTransactionRepository creates a repository running query against the
// source DSN. A zero timeout leaves the read unbounded.
func NewSQLTransactionRepository(columns Columns, query string, timeout time.Duration) *SQLTransactionRepository {
	if query == "" {
		query = DefaultQuery
	}
	return &SQLTransactionRepository{columns: columns, query: query, timeout: timeout}
}

// GetTransactions opens the DSN, runs the configured query and parses every row.
func (r *SQLTransactionRepository) GetTransactions(ctx context.Context, dsn string) ([]domain.Transaction, error) {
	driver, source, err := OpenSource(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", driver, err)
	}
	defer db.Close()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	rows, err := db.QueryContext(ctx, r.query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s source: %w", driver, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}
	l, err := r.columns.resolve(driver+" query", names)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var transactions []domain.Transaction
	for n := 1; rows.Next(); n++ {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("error scanning row %d: %w", n, err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = sqlText(v)
		}
		tx, err := l.parse(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}
	return transactions, nil
}

// sqlText renders a scanned driver value the way it would appear in a CSV cell.
func sqlText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// OpenSource maps a source URL to a database/sql driver name and the data
// source string that driver expects.
func OpenSource(dsn string) (driver, source string, err error) {
	switch {
	case strings.HasPrefix(dsn, "mysql://"), strings.HasPrefix(dsn, "mariadb://"):
		source, err := toMySQLDSN(dsn)
		if err != nil {
			return "", "", err
		}
		return "mysql", source, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite dsn has no path")
		}
		return "sqlite3", path, nil
	}
	return "", "", fmt.Errorf("unsupported source dsn %q (want mysql://, mariadb://, postgres:// or sqlite://)", dsn)
}

// toMySQLDSN converts a mysql:// or mariadb:// URL to the driver's native
// user:pass@tcp(host)/db form.
func toMySQLDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	db := strings.TrimPrefix(u.Path, "/")
	if user == "" || u.Host == "" || db == "" {
		return "", fmt.Errorf("incomplete dsn (user/host/db)")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
		user, pass, u.Host, db), nil
}
