package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Update resolves the latest release, downloads the archive for this
// platform, verifies it against the release checksums and swaps the
// running binary. report receives one line per phase. Returns the tag
// that was installed.
func (c *Checker) Update(ctx context.Context, current string, report func(string)) (string, error) {
	if current == "(devel)" {
		return "", ErrDevBuild
	}

	report("Checking for the latest version...")
	res, err := c.Check(ctx, &CheckInput{Version: current})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !res.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	tag := res.LatestVersion

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return "", err
	}

	report(fmt.Sprintf("Downloading %s...", tag))
	archive, err := c.fetch(ctx, c.downloadURL(tag, asset))
	if err != nil {
		return "", fmt.Errorf("download archive: %w", err)
	}

	report("Verifying checksum...")
	sums, err := c.fetch(ctx, c.downloadURL(tag, "checksums.txt"))
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, asset)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(archive)
	if hex.EncodeToString(sum[:]) != want {
		return "", fmt.Errorf("%w for %s", ErrChecksum, asset)
	}

	report("Installing...")
	binary, err := unpackBinary(archive, asset)
	if err != nil {
		return "", err
	}
	target, err := c.execPath()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(target, binary); err != nil {
		return "", fmt.Errorf("replace binary: %w", err)
	}

	report(fmt.Sprintf("Updated to %s", tag))
	return tag, nil
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// releaseAsset maps the platform to its published archive name. Darwin
// ships one universal binary.
func releaseAsset(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return "perfily_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("no release build for architecture %s", goarch)
	}
	switch goos {
	case "linux":
		return "perfily_Linux_" + arch + ".tar.gz", nil
	case "windows":
		return "perfily_Windows_" + arch + ".zip", nil
	}
	return "", fmt.Errorf("no release build for %s", goos)
}

func (c *Checker) downloadURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds the sha256 entry for asset in a checksums.txt body.
// Lines that are not "<hex>  <name>" pairs are skipped.
func checksumFor(sums []byte, asset string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("checksums.txt has no entry for %s", asset)
}

func unpackBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return binaryFromZip(archive, "perfily.exe")
	}
	return binaryFromTarGz(archive, "perfily")
}

func binaryFromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func binaryFromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// swapBinary writes the new binary next to the target with the target's
// permissions and renames it into place, so the switch is atomic and a
// failed download never clobbers a working install.
func swapBinary(target string, data []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".perfily-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		return err
	}
	return os.Rename(tmpName, target)
}
