package recorder_test

import (
	"fmt"
	"sync"
	"testing"

	"pagetrace-service/src/logger"
	"pagetrace-service/src/recorder"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRequestCompleted_FieldMapping(t *testing.T) {
	// Step 1: Set up SQL mock
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %s", err)
	}
	defer db.Close()

	rec := recorder.NewRecorder(db, logger.NewLogger(logger.INFO))

	// Step 2: Expect the insert with every field mapped 1:1 from the event
	mock.ExpectExec(`INSERT INTO page_requests`).
		WithArgs(200, "GET", "/posts/1", "html", "posts", "show", 12.3, 4.5, 195.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	viewRuntime := 12.3
	dbRuntime := 4.5
	ev := recorder.CycleEvent{
		Status:      200,
		Method:      "GET",
		Path:        "/posts/1",
		Format:      "html",
		Controller:  "posts",
		Action:      "show",
		ViewRuntime: &viewRuntime,
		DBRuntime:   &dbRuntime,
		Duration:    195.0,
	}

	// Step 3: Record and assert
	if err := rec.RequestCompleted(ev); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRequestCompleted_MissingRuntimesStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %s", err)
	}
	defer db.Close()

	rec := recorder.NewRecorder(db, logger.NewLogger(logger.INFO))

	// An early redirect never reaches the render or database phases, so the
	// two runtime columns must be NULL while everything else is present
	mock.ExpectExec(`INSERT INTO page_requests`).
		WithArgs(302, "GET", "/old-path", "", "pages", "redirect", nil, nil, 2.1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ev := recorder.CycleEvent{
		Status:     302,
		Method:     "GET",
		Path:       "/old-path",
		Format:     "",
		Controller: "pages",
		Action:     "redirect",
		Duration:   2.1,
	}

	if err := rec.RequestCompleted(ev); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRequestCompleted_InsertFailurePropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %s", err)
	}
	defer db.Close()

	rec := recorder.NewRecorder(db, logger.NewLogger(logger.INFO))

	mock.ExpectExec(`INSERT INTO page_requests`).
		WillReturnError(fmt.Errorf("pq: value out of range"))

	ev := recorder.CycleEvent{
		Status:   500,
		Method:   "POST",
		Path:     "/posts",
		Duration: 10.0,
	}

	if err := rec.RequestCompleted(ev); err == nil {
		t.Fatal("expected insert error to propagate, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRequestCompleted_ConcurrentEventsAreIndependent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %s", err)
	}
	defer db.Close()

	// The two inserts may hit the store in either order
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(`INSERT INTO page_requests`).
		WithArgs(200, "GET", "/posts/1", "html", "posts", "show", nil, nil, 11.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO page_requests`).
		WithArgs(201, "POST", "/posts", "json", "posts", "create", nil, nil, 22.0).
		WillReturnResult(sqlmock.NewResult(2, 1))

	rec := recorder.NewRecorder(db, logger.NewLogger(logger.INFO))

	events := []recorder.CycleEvent{
		{Status: 200, Method: "GET", Path: "/posts/1", Format: "html", Controller: "posts", Action: "show", Duration: 11.0},
		{Status: 201, Method: "POST", Path: "/posts", Format: "json", Controller: "posts", Action: "create", Duration: 22.0},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(events))
	for i, ev := range events {
		wg.Add(1)
		go func(i int, ev recorder.CycleEvent) {
			defer wg.Done()
			errs[i] = rec.RequestCompleted(ev)
		}(i, ev)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("event %d: expected no error, got %v", i, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
