package controller

import (
	"net/http"
	"testing"

	"retail_hub_v1_202608/internal/model"
)

// ==================== 测试用例 ====================

func TestUserController_CreateAndGet(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	w := doJSON(router, http.MethodPost, "/users", map[string]interface{}{
		"name": "Alice", "phone_number": "1234567890",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/users/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
		IsDeleted   bool   `json:"is_deleted"`
	}
	decodeBody(t, w, &got)
	if got.Name != "Alice" || got.PhoneNumber != "1234567890" || got.IsDeleted {
		t.Errorf("回读字段不一致: %+v", got)
	}

	// 缺 phone_number
	w = doJSON(router, http.MethodPost, "/users", map[string]interface{}{"name": "Bob"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Missing required field: phone_number" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestUserController_DoubleDelete(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.User{Name: "Alice", PhoneNumber: "111"})

	w := doJSON(router, http.MethodDelete, "/users/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("首次删除 status = %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "User deleted" {
		t.Errorf("message = %q", resp.Message)
	}

	// 第二次删除：软删除的行对读守卫不可见，404
	w = doJSON(router, http.MethodDelete, "/users/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("重复删除 status = %d, want 404", w.Code)
	}

	// 标记保持 true
	var user model.User
	db.First(&user, 1)
	if !user.IsDeleted {
		t.Error("is_deleted 应保持 true")
	}
}

func TestUserController_ListExcludesDeleted(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.User{Name: "Alive", PhoneNumber: "111"})
	db.Create(&model.User{Name: "Gone", PhoneNumber: "222", IsDeleted: true})

	w := doJSON(router, http.MethodGet, "/users", nil)
	var list []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &list)
	if len(list) != 1 || list[0].Name != "Alive" {
		t.Errorf("列表应只含未删除用户: %+v", list)
	}
}

func TestUserController_ModifyRoleUpsert(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.User{Name: "Alice", PhoneNumber: "111"})
	db.Create(&model.Shop{Name: "Shop", Latitude: 1, Longitude: 1, PhoneNumber: "222"})

	// 第一次：插入 staff
	w := doJSON(router, http.MethodPut, "/users/1/roles", map[string]interface{}{
		"shop_id": 1, "role": "staff",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var role struct {
		ID     int64  `json:"id"`
		UserID int64  `json:"user_id"`
		ShopID int64  `json:"shop_id"`
		Role   string `json:"role"`
	}
	decodeBody(t, w, &role)
	if role.Role != "staff" || role.UserID != 1 || role.ShopID != 1 {
		t.Errorf("role = %+v", role)
	}

	// 第二次：同 (user, shop) 换成 admin，仍然只有一行
	w = doJSON(router, http.MethodPut, "/users/1/roles", map[string]interface{}{
		"shop_id": 1, "role": "admin",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	decodeBody(t, w, &role)
	if role.Role != "admin" {
		t.Errorf("role = %q, want admin", role.Role)
	}

	var count int64
	db.Model(&model.UserRole{}).Count(&count)
	if count != 1 {
		t.Errorf("角色行数 = %d, want 1", count)
	}
	var row model.UserRole
	db.First(&row)
	if row.Role != "admin" {
		t.Errorf("落库角色 = %q, want admin", row.Role)
	}
}

func TestUserController_ModifyRoleInvalidValue(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.User{Name: "Alice", PhoneNumber: "111"})

	w := doJSON(router, http.MethodPut, "/users/1/roles", map[string]interface{}{
		"shop_id": 1, "role": "owner",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Invalid role value" {
		t.Errorf("error = %q", resp.Error)
	}

	// 校验失败不应落任何行
	var count int64
	db.Model(&model.UserRole{}).Count(&count)
	if count != 0 {
		t.Errorf("角色行数 = %d, want 0", count)
	}
}

func TestUserController_ModifyRoleUserNotFound(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	// 软删除的用户与不存在等价
	db.Create(&model.User{Name: "Gone", PhoneNumber: "111", IsDeleted: true})

	for _, path := range []string{"/users/1/roles", "/users/99/roles"} {
		w := doJSON(router, http.MethodPut, path, map[string]interface{}{
			"shop_id": 1, "role": "staff",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", path, w.Code)
		}
	}
}

func TestUserController_GuardBeforeValidation(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	// 软删除的用户 + 非法角色值：存在性守卫优先，404 而不是 400
	db.Create(&model.User{Name: "Gone", PhoneNumber: "111", IsDeleted: true})

	w := doJSON(router, http.MethodPut, "/users/1/roles", map[string]interface{}{
		"shop_id": 1, "role": "owner",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "User not found" {
		t.Errorf("error = %q, want User not found", resp.Error)
	}

	// 更新不存在的用户，缺字段的请求体同样先 404
	w = doJSON(router, http.MethodPut, "/users/99", map[string]interface{}{"name": "X"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUserController_Update(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.User{Name: "Old", PhoneNumber: "111"})

	w := doJSON(router, http.MethodPut, "/users/1", map[string]interface{}{
		"name": "New", "phone_number": "999",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var user model.User
	db.First(&user, 1)
	if user.Name != "New" || user.PhoneNumber != "999" {
		t.Errorf("更新未落库: %+v", user)
	}
}
