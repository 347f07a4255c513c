package models

import "testing"

func ptr(s string) *string { return &s }

func TestMergeKeepsStoredValuesForNilFields(t *testing.T) {
	existing := Product{
		ID:       7,
		Name:     "Khanom Krok",
		Image:    ptr("http://host/uploads/images/a.png"),
		Stock:    ptr("12"),
		Catagory: ptr("dessert"),
		Location: ptr("shelf A"),
		Status:   ptr("active"),
	}

	got := Merge(existing, ProductPatch{Name: ptr("Khanom Krok Bai Toey")})

	if got.ID != 7 {
		t.Errorf("ID = %d", got.ID)
	}
	if got.Name != "Khanom Krok Bai Toey" {
		t.Errorf("Name = %q", got.Name)
	}
	if *got.Image != *existing.Image || *got.Stock != "12" || *got.Catagory != "dessert" ||
		*got.Location != "shelf A" || *got.Status != "active" {
		t.Errorf("omitted fields changed: %+v", got)
	}
}

func TestMergeAppliesEverySubmittedField(t *testing.T) {
	existing := Product{ID: 1, Name: "old"}
	patch := ProductPatch{
		Name:     ptr("new"),
		Image:    ptr("http://host/uploads/images/b.png"),
		Stock:    ptr("3"),
		Catagory: ptr("snack"),
		Location: ptr("B2"),
		Status:   ptr("low"),
	}

	got := Merge(existing, patch)

	if got.Name != "new" || *got.Image != *patch.Image || *got.Stock != "3" ||
		*got.Catagory != "snack" || *got.Location != "B2" || *got.Status != "low" {
		t.Errorf("got %+v", got)
	}
}

func TestMergeSubmittedEmptyStringOverwrites(t *testing.T) {
	existing := Product{ID: 1, Name: "keep", Status: ptr("active")}

	got := Merge(existing, ProductPatch{Status: ptr("")})

	if got.Status == nil || *got.Status != "" {
		t.Errorf("Status = %v, want empty string", got.Status)
	}
	if got.Name != "keep" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestMergeDoesNotTouchExisting(t *testing.T) {
	existing := Product{ID: 1, Name: "before", Stock: ptr("5")}

	_ = Merge(existing, ProductPatch{Name: ptr("after"), Stock: ptr("9")})

	if existing.Name != "before" || *existing.Stock != "5" {
		t.Errorf("existing mutated: %+v", existing)
	}
}
