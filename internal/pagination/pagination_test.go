package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	tests := []struct {
		name      string
		req       PageRequest
		wantData  []int
		wantPages int
		wantPage  int
	}{
		{"first_page", PageRequest{Page: 1, PageSize: 3}, []int{1, 2, 3}, 3, 1},
		{"last_partial_page", PageRequest{Page: 3, PageSize: 3}, []int{7}, 3, 3},
		{"past_end", PageRequest{Page: 9, PageSize: 3}, []int{}, 3, 9},
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5, 6, 7}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.req)
			if len(got.Data) != len(tt.wantData) {
				t.Fatalf("Data = %v, want %v", got.Data, tt.wantData)
			}
			for i := range got.Data {
				if got.Data[i] != tt.wantData[i] {
					t.Fatalf("Data = %v, want %v", got.Data, tt.wantData)
				}
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.TotalItems != int64(len(items)) {
				t.Errorf("TotalItems = %d", got.TotalItems)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]string(nil), PageRequest{})
	if got.Data == nil || len(got.Data) != 0 {
		t.Errorf("Data = %#v, want empty non-nil slice", got.Data)
	}
	if got.TotalPages != 0 || got.HasNext() || got.HasPrev() {
		t.Errorf("unexpected metadata %+v", got)
	}
}

func TestPageNavigation(t *testing.T) {
	got := Paginate([]int{1, 2, 3, 4}, PageRequest{Page: 2, PageSize: 1})
	if !got.HasNext() || !got.HasPrev() {
		t.Errorf("page 2 of 4 should have both neighbours: %+v", got)
	}
}
