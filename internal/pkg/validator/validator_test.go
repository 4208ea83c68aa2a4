package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMemberID(t *testing.T) {
	valid := []string{"100", "123", "999", "500"}
	invalid := []string{"099", "012", "12", "1234", "abc", "1a2", "", " 123"}
	for _, id := range valid {
		if !IsValidMemberID(id) {
			t.Errorf("IsValidMemberID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidMemberID(id) {
			t.Errorf("IsValidMemberID(%q) = true, want false", id)
		}
	}
}

func TestIsValidLink(t *testing.T) {
	valid := []string{"http://a", "https://docs.google.com/doc/1", "https://x.y/z?q=1"}
	invalid := []string{"https://", "ftp://host/file", "docs.google.com", "", " https://a"}
	for _, link := range valid {
		if !IsValidLink(link) {
			t.Errorf("IsValidLink(%q) = false, want true", link)
		}
	}
	for _, link := range invalid {
		if IsValidLink(link) {
			t.Errorf("IsValidLink(%q) = true, want false", link)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateIn(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	got, ok := ParseDateIn("2024-03-15", loc)
	if !ok {
		t.Fatalf("ParseDateIn returned !ok")
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseDateIn = %v, want %v", got, want)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"on_site", "remote"}
	if !IsInSlice("remote", slice) {
		t.Errorf("IsInSlice(remote) = false, want true")
	}
	if IsInSlice("Remote", slice) {
		t.Errorf("IsInSlice(Remote) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := Fail("name", "name is required")
	if errs.Error() != "name: name is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
	if m := errs.ToMap(); m["name"] != "name is required" || len(m) != 1 {
		t.Errorf("ToMap() = %v", m)
	}
}
