package services

import (
	"testing"
	"time"

	"fincast/internal/clock"
	"fincast/internal/models"
	"fincast/internal/pagination"
	"fincast/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Groceries", "Food shopping", "#4caf50")
		testutil.AssertNoError(t, err)

		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if category.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %q", category.Name)
		}
	})

	t.Run("duplicate_name_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Groceries", "", "#4caf50")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "groceries", "", "#ff0000")
		testutil.AssertAppError(t, err, "CATEGORY_EXISTS")
	})

	t.Run("same_name_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user1.ID, "Groceries", "", "#4caf50")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user2.ID, "Groceries", "", "#4caf50")
		testutil.AssertNoError(t, err)
	})

	t.Run("blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "   ", "", "#4caf50")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("rename_propagates_to_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		catSvc := NewCategoryService(db)
		expSvc := NewExpenseService(db, clock.Fixed(fixedToday), materializeStrategy{})
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategoryWithName(t, db, user.ID, "Groceries")

		expense, err := expSvc.CreateExpense(user.ID, ExpenseInput{
			Date:       testutil.Day(2024, time.January, 10),
			CategoryID: &category.ID,
			Amount:     testutil.Dec(t, "45"),
		})
		testutil.AssertNoError(t, err)
		if expense.Category != "Groceries" {
			t.Fatalf("expected denormalized name Groceries, got %q", expense.Category)
		}

		_, err = catSvc.UpdateCategory(user.ID, category.ID, "Food", "", "#4caf50")
		testutil.AssertNoError(t, err)

		reloaded, err := expSvc.GetExpenseByID(user.ID, expense.ID)
		testutil.AssertNoError(t, err)
		if reloaded.Category != "Food" {
			t.Errorf("expected expense category renamed to Food, got %q", reloaded.Category)
		}
	})

	t.Run("rename_does_not_touch_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		catSvc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat1 := testutil.CreateTestCategoryWithName(t, db, user1.ID, "Groceries")
		other := testutil.CreateTestExpense(t, db, user2.ID, testutil.Day(2024, time.January, 10), "Groceries", "45")

		_, err := catSvc.UpdateCategory(user1.ID, cat1.ID, "Food", "", "#4caf50")
		testutil.AssertNoError(t, err)

		var reloaded models.Expense
		db.First(&reloaded, other.ID)
		if reloaded.Category != "Groceries" {
			t.Errorf("expected other user's expense untouched, got %q", reloaded.Category)
		}
	})

	t.Run("rename_to_existing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, user.ID, "Food")
		category := testutil.CreateTestCategoryWithName(t, db, user.ID, "Groceries")

		_, err := svc.UpdateCategory(user.ID, category.ID, "food", "", "#4caf50")
		testutil.AssertAppError(t, err, "CATEGORY_EXISTS")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateCategory(user.ID, 99999, "Food", "", "#4caf50")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("deletes_unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		err := svc.DeleteCategory(user.ID, category.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCategoryByID(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("blocked_when_in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		catSvc := NewCategoryService(db)
		expSvc := NewExpenseService(db, clock.Fixed(fixedToday), materializeStrategy{})
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		_, err := expSvc.CreateExpense(user.ID, ExpenseInput{
			Date:       testutil.Day(2024, time.January, 10),
			CategoryID: &category.ID,
			Amount:     testutil.Dec(t, "45"),
		})
		testutil.AssertNoError(t, err)

		err = catSvc.DeleteCategory(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("orders_alphabetically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategoryWithName(t, db, user.ID, "Transport")
		testutil.CreateTestCategoryWithName(t, db, user.ID, "Groceries")

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserCategories(user.ID, page)
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result.Data))
		}
		if result.Data[0].Name != "Groceries" {
			t.Errorf("expected Groceries first, got %q", result.Data[0].Name)
		}
	})
}
