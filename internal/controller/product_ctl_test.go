package controller

import (
	"net/http"
	"testing"

	"retail_hub_v1_202608/internal/model"
)

// ==================== 测试用例 ====================

func TestProductController_CreateAndList(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.Shop{Name: "Shop", Latitude: 1, Longitude: 1, PhoneNumber: "111"})
	db.Create(&model.Category{Name: "Drinks"})

	payload := map[string]interface{}{
		"name": "Cola", "amount": 24, "price": 3.5, "category_id": 1,
	}
	w := doJSON(router, http.MethodPost, "/shops/1/products", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// 创建一个商品后列表正好一条，字段与创建参数一致
	w = doJSON(router, http.MethodGet, "/shops/1/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []struct {
		ID         int64   `json:"id"`
		ShopID     int64   `json:"shop_id"`
		CategoryID int64   `json:"category_id"`
		Name       string  `json:"name"`
		Amount     int     `json:"amount"`
		Price      float64 `json:"price"`
	}
	decodeBody(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	p := list[0]
	if p.Name != "Cola" || p.Amount != 24 || p.Price != 3.5 || p.CategoryID != 1 || p.ShopID != 1 {
		t.Errorf("商品字段不一致: %+v", p)
	}
}

func TestProductController_CreateValidation(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.Shop{Name: "Shop", Latitude: 1, Longitude: 1, PhoneNumber: "111"})

	w := doJSON(router, http.MethodPost, "/shops/1/products", map[string]interface{}{
		"name": "NoPrice", "amount": 1, "category_id": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Missing required field: price" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestProductController_ShopGuards(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.Shop{Name: "Dead", Latitude: 1, Longitude: 1, PhoneNumber: "111", IsDeleted: true})

	payload := map[string]interface{}{
		"name": "P", "amount": 1, "price": 1.0, "category_id": 1,
	}
	// 软删除店铺下建商品 404
	if w := doJSON(router, http.MethodPost, "/shops/1/products", payload); w.Code != http.StatusNotFound {
		t.Errorf("创建 status = %d, want 404", w.Code)
	}
	// 列表同样被守卫拦下
	if w := doJSON(router, http.MethodGet, "/shops/1/products", nil); w.Code != http.StatusNotFound {
		t.Errorf("列表 status = %d, want 404", w.Code)
	}
}

func TestProductController_Update(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.Shop{Name: "Shop", Latitude: 1, Longitude: 1, PhoneNumber: "111"})
	db.Create(&model.Category{Name: "Drinks"})
	db.Create(&model.Category{Name: "Food"})
	db.Create(&model.Product{ShopID: 1, CategoryID: 1, Name: "Cola", Amount: 24, Price: 3.5})

	w := doJSON(router, http.MethodPut, "/shops/1/products/1", map[string]interface{}{
		"name": "Cola Zero", "amount": 12, "price": 4.0, "category_id": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var p model.Product
	db.First(&p, 1)
	if p.Name != "Cola Zero" || p.Amount != 12 || p.Price != 4.0 || p.CategoryID != 2 {
		t.Errorf("更新未落库: %+v", p)
	}

	// 不存在的商品 404
	if w := doJSON(router, http.MethodPut, "/shops/1/products/99", map[string]interface{}{
		"name": "X", "amount": 1, "price": 1.0, "category_id": 1,
	}); w.Code != http.StatusNotFound {
		t.Errorf("不存在商品 status = %d, want 404", w.Code)
	}
}

func TestProductController_UpdateDeletedShopOwner(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	db.Create(&model.Shop{Name: "Dead", Latitude: 1, Longitude: 1, PhoneNumber: "111", IsDeleted: true})
	db.Create(&model.Product{ShopID: 1, CategoryID: 1, Name: "Orphan", Amount: 1, Price: 1})

	// 归属店铺已软删除，按 not found 处理
	w := doJSON(router, http.MethodPut, "/shops/1/products/1", map[string]interface{}{
		"name": "X", "amount": 1, "price": 1.0, "category_id": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestProductController_GuardBeforeValidation(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	// 店铺不存在且请求体缺字段时，存在性守卫优先于字段校验
	w := doJSON(router, http.MethodPost, "/shops/42/products", map[string]interface{}{
		"name": "NoPrice", "amount": 1, "category_id": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("创建 status = %d, want 404", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Shop not found" {
		t.Errorf("error = %q, want Shop not found", resp.Error)
	}

	// 商品不存在时更新同理
	w = doJSON(router, http.MethodPut, "/shops/1/products/99", map[string]interface{}{
		"name": "NoPrice", "amount": 1, "category_id": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("更新 status = %d, want 404", w.Code)
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Product not found" {
		t.Errorf("error = %q, want Product not found", resp.Error)
	}
}

func TestCategoryController_CreateAndList(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	w := doJSON(router, http.MethodPost, "/shops/categories", map[string]interface{}{"name": "Drinks"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, w, &created)
	if created.ID == 0 || created.Name != "Drinks" {
		t.Errorf("created = %+v", created)
	}

	// 缺 name
	w = doJSON(router, http.MethodPost, "/shops/categories", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	doJSON(router, http.MethodPost, "/shops/categories", map[string]interface{}{"name": "Food"})

	w = doJSON(router, http.MethodGet, "/shops/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &list)
	if len(list) != 2 || list[0].Name != "Drinks" || list[1].Name != "Food" {
		t.Errorf("list = %+v", list)
	}
}

func TestCategoryController_DuplicateName(t *testing.T) {
	db := setupCtlTestDB(t)
	router := setupCtlRouter(db)

	w := doJSON(router, http.MethodPost, "/shops/categories", map[string]interface{}{"name": "Drinks"})
	if w.Code != http.StatusCreated {
		t.Fatalf("首次创建 status = %d, body = %s", w.Code, w.Body.String())
	}

	// 分类名唯一索引，重名直达存储层报错
	w = doJSON(router, http.MethodPost, "/shops/categories", map[string]interface{}{"name": "Drinks"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("重名创建 status = %d, want 500", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error == "" {
		t.Error("错误响应应带 error 字段")
	}

	// 重名插入未落库
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count != 1 {
		t.Errorf("分类行数 = %d, want 1", count)
	}
}
