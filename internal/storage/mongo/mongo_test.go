package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/speak90-backend/internal/config"
	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV MONGO_URL, а каждая спецификация
// создаёт свою БД с уникальным именем (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	// Получаем host:port и формируем URI без имени БД.
	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	_ = os.Setenv("MONGO_URL", uri)

	// Запускаем тесты пакета.
	code := m.Run()

	// Гасим контейнер *после* выполнения пакета тестов.
	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	baseURL := os.Getenv("MONGO_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "speak90_test_" + uuid.New().String()
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL + dbName
	} else {
		baseURL = baseURL + "/" + dbName
	}

	return &config.Config{
		Mongo: config.MongoConfig{
			URL: baseURL,
		},
	}
}

// mustNewMongo создаёт подключение к созданной Test DB и регистрирует очистку по завершении теста.
// Без GO_TEST_INTEGRATION контейнер не поднимается (см. TestMain), поэтому
// интеграционные тесты пропускаются, а не стучатся в localhost.
func mustNewMongo(t *testing.T, cfg *config.Config) *Mongo {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (MONGO_URL=%s)", err, cfg.Mongo.URL)
	}

	// При завершении теста — подчистить БД и соединение.
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCampaign(year, campaignType string) *models.PrizeCampaign {
	return &models.PrizeCampaign{
		Name:   "Advent calendar " + year,
		Year:   year,
		Type:   campaignType,
		Status: "draft",
		Prizes: []models.PrizeEntry{
			{
				ID:        1,
				Date:      year + "-12-01",
				Prize:     "Sprachkurs Premium",
				Headline:  "Tag 1",
				IsPremium: true,
			},
			{
				ID:    2,
				Date:  year + "-12-02",
				Prize: "Notizbuch",
			},
		},
	}
}

// TestDatabaseFromURI — имя БД извлекается из пути URI, дефолт при отсутствии.
func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mongodb://localhost:27017/speak90_test", "speak90_test"},
		{"mongodb://localhost:27017/", defaultDBName},
		{"mongodb://localhost:27017", defaultDBName},
	}
	for _, tt := range tests {
		if got := databaseFromURI(tt.in); got != tt.want {
			t.Errorf("databaseFromURI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestCreateCampaign_AssignsID_And_ReadBack — создание присваивает hex ObjectID,
// чтение по id и по паре (year, type) возвращает тот же документ.
func TestCreateCampaign_AssignsID_And_ReadBack(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	created, err := m.CreateCampaign(ctx, testCampaign("2026", models.CampaignTypeAdvent))
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated ID")
	}

	byID, err := m.CampaignByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("CampaignByID error: %v", err)
	}

	if byID.Name != created.Name || len(byID.Prizes) != 2 {
		t.Fatalf("read back mismatch: %+v", byID)
	}

	byPair, err := m.CampaignByYearAndType(ctx, "2026", models.CampaignTypeAdvent)
	if err != nil {
		t.Fatalf("CampaignByYearAndType error: %v", err)
	}

	if byPair.ID != created.ID {
		t.Fatalf("byPair.ID = %q, want %q", byPair.ID, created.ID)
	}
}

// TestCreateCampaign_DuplicateYearType — уникальный индекс (year, type)
// отклоняет вторую кампанию того же типа на тот же год.
func TestCreateCampaign_DuplicateYearType(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	if _, err := m.CreateCampaign(ctx, testCampaign("2026", models.CampaignTypeEaster)); err != nil {
		t.Fatalf("CreateCampaign(first) error: %v", err)
	}

	_, err := m.CreateCampaign(ctx, testCampaign("2026", models.CampaignTypeEaster))
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

// TestCampaignByID_NotFoundOnBadID — невалидный формат id трактуем как отсутствие записи.
func TestCampaignByID_NotFoundOnBadID(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	if _, err := m.CampaignByID(ctx, "deadbeef"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound for bad id format, got %v", err)
	}

	// Валидный hex ObjectID, но документа нет.
	if _, err := m.CampaignByID(ctx, "65e0a0c9fd2f000000000000"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound for missing doc, got %v", err)
	}
}

// TestListCampaigns_Order — сортировка: год по убыванию, тип по возрастанию.
func TestListCampaigns_Order(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	for _, c := range []*models.PrizeCampaign{
		testCampaign("2025", models.CampaignTypeEaster),
		testCampaign("2026", models.CampaignTypeEaster),
		testCampaign("2026", models.CampaignTypeAdvent),
	} {
		if _, err := m.CreateCampaign(ctx, c); err != nil {
			t.Fatalf("CreateCampaign(%s/%s) error: %v", c.Year, c.Type, err)
		}
	}

	got, err := m.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	if got[0].Year != "2026" || got[0].Type != models.CampaignTypeAdvent {
		t.Fatalf("got[0] = %s/%s, want 2026/advent", got[0].Year, got[0].Type)
	}

	if got[2].Year != "2025" {
		t.Fatalf("got[2].Year = %s, want 2025", got[2].Year)
	}
}

// TestUpdateCampaignByID_Partial — обновляются только переданные поля.
func TestUpdateCampaignByID_Partial(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	created, err := m.CreateCampaign(ctx, testCampaign("2026", models.CampaignTypeAdvent))
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	status := "active"
	updated, err := m.UpdateCampaignByID(ctx, created.ID, storage.CampaignUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateCampaignByID error: %v", err)
	}

	if updated.Status != "active" {
		t.Fatalf("Status = %q, want active", updated.Status)
	}

	// Остальные поля не тронуты.
	if updated.Name != created.Name || len(updated.Prizes) != 2 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	// Пустой апдейт — текущий документ без модификаций.
	same, err := m.UpdateCampaignByID(ctx, created.ID, storage.CampaignUpdate{})
	if err != nil {
		t.Fatalf("UpdateCampaignByID(empty) error: %v", err)
	}

	if same.Status != "active" {
		t.Fatalf("empty update must not modify: %+v", same)
	}

	// Несуществующий документ.
	if _, err := m.UpdateCampaignByID(ctx, "65e0a0c9fd2f000000000000", storage.CampaignUpdate{Status: &status}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// TestDeleteCampaignByID_Flow — удаление существующего и повтор по тому же id.
func TestDeleteCampaignByID_Flow(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	created, err := m.CreateCampaign(ctx, testCampaign("2026", models.CampaignTypeEaster))
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	if err := m.DeleteCampaignByID(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCampaignByID error: %v", err)
	}

	if _, err := m.CampaignByID(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}

	if err := m.DeleteCampaignByID(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound on repeated delete, got %v", err)
	}
}

// TestEnsureIndexes_Created — уникальный индекс (year, type) существует.
func TestEnsureIndexes_Created(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	cur, err := m.campaigns.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("Indexes().List error: %v", err)
	}
	defer cur.Close(ctx)

	var found bool
	for cur.Next(ctx) {
		var spec map[string]any
		if err := cur.Decode(&spec); err != nil {
			t.Fatalf("decode index spec: %v", err)
		}

		if name, _ := spec["name"].(string); name == "year_type_unique" {
			found = true
			if unique, _ := spec["unique"].(bool); !unique {
				t.Fatalf("index year_type_unique must be unique: %+v", spec)
			}
		}
	}

	if err := cur.Err(); err != nil {
		t.Fatalf("cursor err: %v", err)
	}

	if !found {
		t.Fatalf("index year_type_unique not found")
	}
}
