package release

import "testing"

func TestSelectLinuxAMD64(t *testing.T) {
	assets := []Asset{
		{Name: "junocashd-darwin-amd64.tar.gz", DownloadURL: "https://example.com/darwin"},
		{Name: "junocashd-windows-amd64.zip", DownloadURL: "https://example.com/windows"},
		{Name: "junocashd-linux-amd64.tar.gz", DownloadURL: "https://example.com/linux"},
		{Name: "junocashd-linux-amd64.tar.gz.sha256", DownloadURL: "https://example.com/sum"},
	}

	asset, ok := SelectLinuxAMD64(assets)
	if !ok {
		t.Fatal("SelectLinuxAMD64 found no asset")
	}
	if asset.Name != "junocashd-linux-amd64.tar.gz" {
		t.Errorf("selected %q, expected linux amd64 archive", asset.Name)
	}
}

func TestSelectLinuxAMD64_Markers(t *testing.T) {
	tests := []struct {
		name  string
		asset string
	}{
		{"amd64 marker", "junocashd-linux-amd64.tar.gz"},
		{"x86_64 marker", "junocashd-x86_64-linux-gnu.tar.gz"},
		{"linux64 marker", "junocashd-1.0.77-linux64.tar.gz"},
		{"uppercase name", "Junocashd-LINUX-AMD64.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, ok := SelectLinuxAMD64([]Asset{{Name: tt.asset}})
			if !ok {
				t.Fatalf("no asset selected from %q", tt.asset)
			}
			if asset.Name != tt.asset {
				t.Errorf("selected %q, expected %q", asset.Name, tt.asset)
			}
		})
	}
}

func TestSelectLinuxAMD64_NoMatch(t *testing.T) {
	tests := []struct {
		name   string
		assets []Asset
	}{
		{"empty release", nil},
		{"darwin amd64 only", []Asset{
			{Name: "junocashd-darwin-amd64.tar.gz"},
		}},
		{"other platforms only", []Asset{
			{Name: "junocashd-darwin-arm64.tar.gz"},
			{Name: "junocashd-windows-amd64.zip"},
		}},
		{"wrong arch", []Asset{
			{Name: "junocashd-linux-arm64.tar.gz"},
		}},
		{"checksums only", []Asset{
			{Name: "junocashd-linux-amd64.tar.gz.sha256"},
			{Name: "junocashd-linux-amd64.tar.gz.asc"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if asset, ok := SelectLinuxAMD64(tt.assets); ok {
				t.Errorf("selected %q, expected no match", asset.Name)
			}
		})
	}
}

func TestSelectLinuxAMD64_PrefersNonDebug(t *testing.T) {
	assets := []Asset{
		{Name: "junocashd-linux64-debug.tar.gz"},
		{Name: "junocashd-linux64.tar.gz"},
	}

	asset, ok := SelectLinuxAMD64(assets)
	if !ok {
		t.Fatal("SelectLinuxAMD64 found no asset")
	}
	if asset.Name != "junocashd-linux64.tar.gz" {
		t.Errorf("selected %q, expected the non-debug build", asset.Name)
	}
}

func TestSelectLinuxAMD64_DebugFallback(t *testing.T) {
	assets := []Asset{
		{Name: "junocashd-linux64-debug.tar.gz"},
	}

	asset, ok := SelectLinuxAMD64(assets)
	if !ok {
		t.Fatal("SelectLinuxAMD64 found no asset")
	}
	if asset.Name != "junocashd-linux64-debug.tar.gz" {
		t.Errorf("selected %q, expected debug fallback", asset.Name)
	}
}
