package repositories_test

import (
	"ZomatoBackend/models"
	"ZomatoBackend/repositories"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateQuantity(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected int
		valid    bool
	}{
		{"最小值", "1", 1, true},
		{"最大值", "100", 100, true},
		{"一般數量", "5", 5, true},
		{"含頭尾空白", " 5 ", 5, true},
		{"零", "0", 0, false},
		{"負數", "-1", 0, false},
		{"超過上限", "101", 0, false},
		{"非數字", "abc", 0, false},
		{"小數", "2.5", 0, false},
		{"空字串", "", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quantity, err := repositories.ValidateQuantity(tc.raw)
			if tc.valid {
				if err != nil {
					t.Fatalf("ValidateQuantity(%q)應該通過，卻回傳錯誤: %v", tc.raw, err)
				}
				if quantity != tc.expected {
					t.Errorf("ValidateQuantity(%q)應該回傳%d，實際%d", tc.raw, tc.expected, quantity)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateQuantity(%q)應該失敗，卻通過了", tc.raw)
			}
			if !repositories.IsValidationError(err) {
				t.Errorf("ValidateQuantity(%q)應該回傳驗證錯誤，實際: %v", tc.raw, err)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	//合法地址會去除頭尾空白
	address, err := repositories.ValidateAddress("  221B Baker Street  ")
	if err != nil {
		t.Fatalf("合法地址不應回傳錯誤: %v", err)
	}
	if address != "221B Baker Street" {
		t.Errorf("地址應該去除頭尾空白，實際%q", address)
	}

	//特殊字元必須過濾掉
	address, err = repositories.ValidateAddress(`221B <Baker> "Street" 'X'`)
	if err != nil {
		t.Fatalf("合法地址不應回傳錯誤: %v", err)
	}
	if strings.ContainsAny(address, `<>"'`) {
		t.Errorf("過濾後的地址不能包含特殊字元，實際%q", address)
	}

	//去除空白後少於10個字元應該失敗
	if _, err := repositories.ValidateAddress("  short  "); err == nil {
		t.Error("太短的地址應該失敗")
	}
	if _, err := repositories.ValidateAddress(""); err == nil {
		t.Error("空地址應該失敗")
	}
	if _, err := repositories.ValidateAddress("123456789"); err == nil {
		t.Error("9個字元的地址應該失敗")
	}
}

// 建立Tea餐點和dave使用者，下訂2份並查詢訂單
func TestCreateOrderScenario(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	if err := orderRepo.Create(dave.ID, tea.ID, 2, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}

	orders, err := orderRepo.GetUserOrders(dave.ID, 0, 0)
	if err != nil {
		t.Fatalf("查詢訂單列表失敗: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("訂單列表長度應該是1，實際%d", len(orders))
	}

	order := orders[0]
	if order.Quantity != 2 {
		t.Errorf("訂單數量應該是2，實際%d", order.Quantity)
	}
	if order.ItemName != "Tea" {
		t.Errorf("餐點名稱應該是Tea，實際%q", order.ItemName)
	}
	if order.Price != 20.00 {
		t.Errorf("價格應該是20.00，實際%v", order.Price)
	}
	if order.DeliveryAddress != "221B Baker Street" {
		t.Errorf("外送地址錯誤，實際%q", order.DeliveryAddress)
	}
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	err := orderRepo.Create(dave.ID, tea.ID, 0, "221B Baker Street")
	if !repositories.IsValidationError(err) {
		t.Fatalf("數量為0應該回傳驗證錯誤，實際: %v", err)
	}

	err = orderRepo.Create(dave.ID, tea.ID, 101, "221B Baker Street")
	if !repositories.IsValidationError(err) {
		t.Fatalf("數量超過100應該回傳驗證錯誤，實際: %v", err)
	}

	//驗證失敗時不能寫入任何資料
	if count := countOrders(t, db); count != 0 {
		t.Errorf("訂單數應該是0，實際%d", count)
	}
}

func TestCreateOrder_ItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	dave := createTestUser(t, userRepo, "dave", "secret1")

	err := orderRepo.Create(dave.ID, 9999, 1, "221B Baker Street")
	if !errors.Is(err, repositories.ErrItemNotFound) {
		t.Fatalf("不存在的餐點應該回傳ErrItemNotFound，實際: %v", err)
	}
	if count := countOrders(t, db); count != 0 {
		t.Errorf("訂單數應該是0，實際%d", count)
	}
}

func TestCreateOrder_SanitizesAddress(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	err := orderRepo.Create(dave.ID, tea.ID, 2, `  221B <Baker> "Street"  `)
	if err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}

	//寫入的必須是過濾後的地址，不是原始輸入
	var order models.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("查詢訂單失敗: %v", err)
	}
	if strings.ContainsAny(order.DeliveryAddress, `<>"'`) {
		t.Errorf("儲存的地址不能包含特殊字元，實際%q", order.DeliveryAddress)
	}
	if order.Quantity != 2 {
		t.Errorf("儲存的數量應該是驗證後的整數2，實際%d", order.Quantity)
	}
}

func TestDeleteOrder_Ownership(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	alice := createTestUser(t, userRepo, "alice", "password123")
	bob := createTestUser(t, userRepo, "bob", "password123")

	if err := orderRepo.Create(alice.ID, tea.ID, 1, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}
	var order models.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("查詢訂單失敗: %v", err)
	}

	//不是訂單擁有者，刪除應該回傳false且資料不變
	deleted, err := orderRepo.Delete(order.ID, bob.ID)
	if err != nil {
		t.Fatalf("刪除訂單失敗: %v", err)
	}
	if deleted {
		t.Error("刪除別人的訂單應該回傳false")
	}
	if count := countOrders(t, db); count != 1 {
		t.Errorf("訂單不應被刪除，訂單數實際%d", count)
	}

	//訂單擁有者可以刪除
	deleted, err = orderRepo.Delete(order.ID, alice.ID)
	if err != nil {
		t.Fatalf("刪除訂單失敗: %v", err)
	}
	if !deleted {
		t.Error("刪除自己的訂單應該回傳true")
	}
	if count := countOrders(t, db); count != 0 {
		t.Errorf("訂單數應該是0，實際%d", count)
	}
}

func TestUpdateOrder(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	alice := createTestUser(t, userRepo, "alice", "password123")
	bob := createTestUser(t, userRepo, "bob", "password123")

	if err := orderRepo.Create(alice.ID, tea.ID, 1, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}
	var order models.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("查詢訂單失敗: %v", err)
	}

	//不合法的數量應該回傳驗證錯誤
	if _, err := orderRepo.Update(order.ID, alice.ID, 0, "742 Evergreen Terrace"); !repositories.IsValidationError(err) {
		t.Errorf("數量為0應該回傳驗證錯誤，實際: %v", err)
	}

	//不是訂單擁有者，修改應該回傳false
	updated, err := orderRepo.Update(order.ID, bob.ID, 3, "742 Evergreen Terrace")
	if err != nil {
		t.Fatalf("修改訂單失敗: %v", err)
	}
	if updated {
		t.Error("修改別人的訂單應該回傳false")
	}

	//訂單擁有者可以修改，寫入驗證後的數量和過濾後的地址
	updated, err = orderRepo.Update(order.ID, alice.ID, 3, `742 <Evergreen> Terrace`)
	if err != nil {
		t.Fatalf("修改訂單失敗: %v", err)
	}
	if !updated {
		t.Error("修改自己的訂單應該回傳true")
	}

	var saved models.Order
	if err := db.First(&saved, order.ID).Error; err != nil {
		t.Fatalf("查詢修改後的訂單失敗: %v", err)
	}
	if saved.Quantity != 3 {
		t.Errorf("數量應該是3，實際%d", saved.Quantity)
	}
	if strings.ContainsAny(saved.DeliveryAddress, `<>"'`) {
		t.Errorf("儲存的地址不能包含特殊字元，實際%q", saved.DeliveryAddress)
	}
}

func TestGetUserOrders_OrderingAndPagination(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	//直接寫入不同時間的訂單以測試排序
	now := time.Now()
	for i := 1; i <= 3; i++ {
		order := models.Order{
			UserID:          dave.ID,
			ItemID:          tea.ID,
			Quantity:        i,
			DeliveryAddress: "221B Baker Street",
			CreatedAt:       now.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("寫入訂單失敗: %v", err)
		}
	}

	//新到舊排序
	orders, err := orderRepo.GetUserOrders(dave.ID, 0, 0)
	if err != nil {
		t.Fatalf("查詢訂單列表失敗: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("訂單列表長度應該是3，實際%d", len(orders))
	}
	if orders[0].Quantity != 3 || orders[1].Quantity != 2 || orders[2].Quantity != 1 {
		t.Errorf("訂單應該依時間新到舊排序: %+v", orders)
	}

	//分頁
	paged, err := orderRepo.GetUserOrders(dave.ID, 1, 1)
	if err != nil {
		t.Fatalf("查詢分頁訂單失敗: %v", err)
	}
	if len(paged) != 1 || paged[0].Quantity != 2 {
		t.Errorf("分頁結果錯誤: %+v", paged)
	}
}

func TestGetUserOrders_OnlyOwnOrders(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	alice := createTestUser(t, userRepo, "alice", "password123")
	bob := createTestUser(t, userRepo, "bob", "password123")

	if err := orderRepo.Create(alice.ID, tea.ID, 1, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}
	if err := orderRepo.Create(bob.ID, tea.ID, 2, "742 Evergreen Terrace"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}

	orders, err := orderRepo.GetUserOrders(alice.ID, 0, 0)
	if err != nil {
		t.Fatalf("查詢訂單列表失敗: %v", err)
	}
	if len(orders) != 1 || orders[0].UserID != alice.ID {
		t.Errorf("只能查到自己的訂單: %+v", orders)
	}
}

func TestGetAllOrders_IncludesUsername(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	if err := orderRepo.Create(dave.ID, tea.ID, 2, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}

	orders, err := orderRepo.GetAllOrders(0, 0)
	if err != nil {
		t.Fatalf("查詢全部訂單失敗: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("訂單列表長度應該是1，實際%d", len(orders))
	}
	if orders[0].Username != "dave" {
		t.Errorf("全部訂單查詢應該包含使用者名稱，實際%q", orders[0].Username)
	}
	if orders[0].ItemName != "Tea" {
		t.Errorf("全部訂單查詢應該包含餐點名稱，實際%q", orders[0].ItemName)
	}
}

func TestDeleteUser_CascadesOrders(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	tea := createTestItem(t, itemRepo, "Tea", "Beverage", 20.00)
	dave := createTestUser(t, userRepo, "dave", "secret1")

	if err := orderRepo.Create(dave.ID, tea.ID, 2, "221B Baker Street"); err != nil {
		t.Fatalf("建立訂單失敗: %v", err)
	}

	//刪除使用者後關聯的訂單必須一併刪除
	if err := db.Delete(&models.User{}, dave.ID).Error; err != nil {
		t.Fatalf("刪除使用者失敗: %v", err)
	}

	orders, err := orderRepo.GetUserOrders(dave.ID, 0, 0)
	if err != nil {
		t.Fatalf("查詢訂單列表失敗: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("刪除使用者後訂單列表應該是空的，實際%d筆", len(orders))
	}
	if count := countOrders(t, db); count != 0 {
		t.Errorf("刪除使用者後訂單數應該是0，實際%d", count)
	}
}
