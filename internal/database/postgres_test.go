package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/reportgen/internal/model"
)

// The PostgreSQL tests download and start a real server, so they only run
// when REPORTGEN_POSTGRES_TESTS=1.
const (
	testPort     = 15433
	testDB       = "reportgen"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

func TestMain(m *testing.M) {
	if os.Getenv("REPORTGEN_POSTGRES_TESTS") != "1" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupPostgres connects to a freshly emptied database.
func setupPostgres(t *testing.T) *PostgresDB {
	t.Helper()

	if testDSN == "" {
		t.Skip("set REPORTGEN_POSTGRES_TESTS=1 to run PostgreSQL tests")
	}

	ctx := context.Background()
	db, err := OpenPostgres(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := db.pool.Exec(ctx, "TRUNCATE members, providers, services, report_runs"); err != nil {
		_ = db.Close()
		t.Fatalf("truncate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// TestOpenPostgres tests connection errors that need no server.
func TestOpenPostgres(t *testing.T) {
	t.Parallel()

	t.Run("empty dsn", func(t *testing.T) {
		t.Parallel()

		if _, err := OpenPostgres(context.Background(), "  "); !errors.Is(err, ErrEmptyDSN) {
			t.Errorf("expected ErrEmptyDSN, got %v", err)
		}
	})

	t.Run("malformed dsn", func(t *testing.T) {
		t.Parallel()

		if _, err := OpenPostgres(context.Background(), "postgres://user@host:notaport/db"); err == nil {
			t.Error("expected error for malformed dsn")
		}
	})
}

// TestRebind tests placeholder rewriting.
func TestRebind(t *testing.T) {
	t.Parallel()

	got := rebind("SELECT a FROM t WHERE b = ? AND c BETWEEN ? AND ?")
	want := "SELECT a FROM t WHERE b = $1 AND c BETWEEN $2 AND $3"
	if got != want {
		t.Errorf("rebind() = %q, want %q", got, want)
	}
}

// TestPostgresDB runs the store contract against PostgreSQL.
// Subtests share one database, so they run sequentially.
func TestPostgresDB(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	if err := db.Import(ctx, sampleFixture()); err != nil {
		t.Fatalf("import: %v", err)
	}

	t.Run("member lookup", func(t *testing.T) {
		m, err := db.Member(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := &model.MemberRecord{Name: "Alex Burbank", Address: "1111", City: "Blah", State: "OR", Number: 7, Zip: 1111}
		if diff := cmp.Diff(want, m); diff != "" {
			t.Errorf("member mismatch (-want +got):\n%s", diff)
		}

		missing, err := db.Member(ctx, 99)
		if err != nil || missing != nil {
			t.Errorf("expected (nil, nil), got (%+v, %v)", missing, err)
		}
	})

	t.Run("provider lookup", func(t *testing.T) {
		p, err := db.Provider(ctx, 100)
		if err != nil || p == nil || p.Name != "John Smith" {
			t.Errorf("unexpected provider (%+v, %v)", p, err)
		}
	})

	t.Run("services", func(t *testing.T) {
		services, err := db.ServicesForMember(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(services) != 3 || services[0].ServiceID != 1 || services[0].ProviderName != "John Smith" {
			t.Errorf("unexpected services %+v", services)
		}

		empty, err := db.ServicesForMember(ctx, 8)
		if err != nil || empty == nil || len(empty) != 0 {
			t.Errorf("expected empty non-nil slice, got (%#v, %v)", empty, err)
		}

		week, err := db.ServicesBetween(ctx, day1, day2)
		if err != nil || len(week) != 2 {
			t.Errorf("expected 2 services in range, got (%d, %v)", len(week), err)
		}

		byProvider, err := db.ServicesForProvider(ctx, 100)
		if err != nil || len(byProvider) != 3 {
			t.Errorf("expected 3 provider services, got (%d, %v)", len(byProvider), err)
		}
	})

	t.Run("reimport upserts", func(t *testing.T) {
		if err := db.Import(ctx, sampleFixture()); err != nil {
			t.Fatalf("reimport: %v", err)
		}
		services, err := db.ServicesForMember(ctx, 7)
		if err != nil || len(services) != 3 {
			t.Errorf("expected 3 services after reimport, got (%d, %v)", len(services), err)
		}
	})

	t.Run("report runs", func(t *testing.T) {
		run := model.ReportRun{
			ID:        "pg-run-1",
			Type:      model.ReportTypeMember,
			SubjectID: 7,
			FileName:  "Alex Burbank.txt",
			Created:   true,
			Timestamp: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		}
		if err := db.SaveReportRun(ctx, &run); err != nil {
			t.Fatalf("save: %v", err)
		}

		runs, err := db.ReportRuns(ctx, 10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if diff := cmp.Diff([]model.ReportRun{run}, runs); diff != "" {
			t.Errorf("runs mismatch (-want +got):\n%s", diff)
		}
	})
}
