package repositories_test

import (
	"testing"

	"daily-planner/internal/repositories"
	"daily-planner/testutil"
)

func TestMySQLTaskRepository(t *testing.T) {
	db := testutil.SetupMySQLTestDB(t)
	runTaskRepositoryContract(t, repositories.NewMySQLTaskRepository(db))
}
