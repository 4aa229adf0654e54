package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/speak90-backend/internal/config"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для аудиозаписей;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    PutAudio: загрузку блоба, схему ключа и валидации по типу/размеру;
//    DeleteAudio: удаление и идемпотентность повтора;
//    StatAudio: размер существующего объекта и ErrObjectNotFound.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*AudioStorage, func(), string) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "audio"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:      endpoint,
			RootUser:      rootUser,
			RootPassword:  rootPassword,
			Bucket:        bucket,
			PublicBaseURL: "http://cdn.local",
		},
		Audio: config.AudioConfig{
			MaxSizeBytes:        1 << 20, // 1 MiB
			AllowedContentTypes: []string{"audio/mp4", "audio/mpeg", "audio/x-m4a"},
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}, ""
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup, endpoint
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _, _ = startMinio(t, false)
}

func TestIntegration_PutAudio_And_StatAudio_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	body := bytes.Repeat([]byte{0x42}, 128)

	obj, err := st.PutAudio(ctx, "dev_subject-a", "day3.m4a", "audio/x-m4a", int64(len(body)), bytes.NewReader(body))
	require.NoError(t, err)
	require.NotEmpty(t, obj.Key)
	require.True(t, strings.HasPrefix(obj.Key, "audio/dev_subject-a/"))
	require.True(t, strings.HasSuffix(obj.Key, ".m4a"))
	require.Equal(t, "http://cdn.local/"+obj.Key, obj.URL)

	size, err := st.StatAudio(ctx, obj.Key)
	require.NoError(t, err)
	require.EqualValues(t, len(body), size)
}

func TestIntegration_PutAudio_InvalidArgs(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()

	// Неверный тип.
	_, err := st.PutAudio(ctx, "dev_subject-a", "x.ogg", "audio/ogg", 10, bytes.NewReader(make([]byte, 10)))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Неверный размер.
	_, err = st.PutAudio(ctx, "dev_subject-a", "x.m4a", "audio/x-m4a", 0, bytes.NewReader(nil))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Превышение лимита.
	_, err = st.PutAudio(ctx, "dev_subject-a", "x.m4a", "audio/x-m4a", (1<<20)+1, bytes.NewReader(nil))
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_DeleteAudio_Idempotent(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	body := []byte("audio-bytes")

	obj, err := st.PutAudio(ctx, "dev_subject-a", "take.m4a", "audio/x-m4a", int64(len(body)), bytes.NewReader(body))
	require.NoError(t, err)

	require.NoError(t, st.DeleteAudio(ctx, obj.Key))

	_, err = st.StatAudio(ctx, obj.Key)
	require.Error(t, err)
	require.True(t, errors.Is(err, storage.ErrObjectNotFound))

	// Повторное удаление (at-least-once retry) не ошибка.
	require.NoError(t, st.DeleteAudio(ctx, obj.Key))
}

func TestIntegration_StatAudio_NotFound(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	_, err := st.StatAudio(context.Background(), "audio/dev_subject-a/missing.m4a")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestIntegration_New_EndpointWithoutScheme_OK(t *testing.T) {
	st, cleanup, endpoint := startMinio(t, true)
	defer cleanup()
	_ = st

	u, err := url.Parse(endpoint)
	require.NoError(t, err)

	cfg2 := &config.Config{
		S3: config.S3Config{
			Endpoint:      u.Host,
			RootUser:      "root",
			RootPassword:  "rootpass",
			Bucket:        "audio",
			PublicBaseURL: "http://cdn.local",
		},
		Audio: config.AudioConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"audio/x-m4a"},
		},
	}

	s2, err := New(context.Background(), cfg2)
	require.NoError(t, err)
	_ = s2
}
