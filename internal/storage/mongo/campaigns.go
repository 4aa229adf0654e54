package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/speak90-backend/internal/models"
	"github.com/pribylovaa/speak90-backend/internal/storage"
)

// campaignDoc — представление кампании в коллекции.
// Отделено от models.PrizeCampaign, чтобы bson-теги не протекали в домен.
type campaignDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Year   string             `bson:"year"`
	Type   string             `bson:"type"`
	Status string             `bson:"status"`
	Prizes []prizeDoc         `bson:"prizes"`
}

type prizeDoc struct {
	ID                 int32  `bson:"id"`
	Date               string `bson:"date"`
	Prize              string `bson:"prize"`
	Headline           string `bson:"headline"`
	Description        string `bson:"description"`
	ArticleLink        string `bson:"article_link"`
	ImageURLVertical   string `bson:"image_url_vertical"`
	ImageURLHorizontal string `bson:"image_url_horizontal"`
	Logo               string `bson:"logo"`
	LogoURL            string `bson:"logo_url"`
	Notes              string `bson:"notes"`
	IsPremium          bool   `bson:"is_premium"`
}

func toDoc(c *models.PrizeCampaign) campaignDoc {
	doc := campaignDoc{
		Name:   c.Name,
		Year:   c.Year,
		Type:   c.Type,
		Status: c.Status,
		Prizes: make([]prizeDoc, 0, len(c.Prizes)),
	}

	for _, p := range c.Prizes {
		doc.Prizes = append(doc.Prizes, prizeDoc(p))
	}

	return doc
}

func fromDoc(doc campaignDoc) models.PrizeCampaign {
	out := models.PrizeCampaign{
		ID:     doc.ID.Hex(),
		Name:   doc.Name,
		Year:   doc.Year,
		Type:   doc.Type,
		Status: doc.Status,
		Prizes: make([]models.PrizeEntry, 0, len(doc.Prizes)),
	}

	for _, p := range doc.Prizes {
		out.Prizes = append(out.Prizes, models.PrizeEntry(p))
	}

	return out
}

// CreateCampaign создаёт кампанию. Дубликат пары (year, type)
// отображается в storage.ErrAlreadyExists.
func (m *Mongo) CreateCampaign(ctx context.Context, campaign *models.PrizeCampaign) (*models.PrizeCampaign, error) {
	const op = "storage/mongo/CreateCampaign"

	doc := toDoc(campaign)

	res, err := m.campaigns.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	out := *campaign
	out.ID = oid.Hex()

	return &out, nil
}

// CampaignByID возвращает кампанию по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) CampaignByID(ctx context.Context, id string) (*models.PrizeCampaign, error) {
	const op = "storage/mongo/CampaignByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc campaignDoc
	if err := m.campaigns.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := fromDoc(doc)

	return &out, nil
}

// CampaignByYearAndType возвращает кампанию по уникальной паре (year, type).
func (m *Mongo) CampaignByYearAndType(ctx context.Context, year, campaignType string) (*models.PrizeCampaign, error) {
	const op = "storage/mongo/CampaignByYearAndType"

	filter := bson.D{
		{Key: "year", Value: strings.TrimSpace(year)},
		{Key: "type", Value: strings.TrimSpace(campaignType)},
	}

	var doc campaignDoc
	if err := m.campaigns.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := fromDoc(doc)

	return &out, nil
}

// ListCampaigns возвращает все кампании, новые годы первыми.
func (m *Mongo) ListCampaigns(ctx context.Context) ([]models.PrizeCampaign, error) {
	const op = "storage/mongo/ListCampaigns"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "type", Value: 1}})

	cur, err := m.campaigns.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.PrizeCampaign
	for cur.Next(ctx) {
		var doc campaignDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, fromDoc(doc))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// UpdateCampaignByID выполняет частичное обновление: меняются только поля,
// заданные в update. Возвращает документ после применения изменений.
func (m *Mongo) UpdateCampaignByID(ctx context.Context, id string, update storage.CampaignUpdate) (*models.PrizeCampaign, error) {
	const op = "storage/mongo/UpdateCampaignByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	set := bson.D{}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}

	if update.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *update.Status})
	}

	if update.Prizes != nil {
		prizes := make([]prizeDoc, 0, len(*update.Prizes))
		for _, p := range *update.Prizes {
			prizes = append(prizes, prizeDoc(p))
		}

		set = append(set, bson.E{Key: "prizes", Value: prizes})
	}

	if len(set) == 0 {
		return m.CampaignByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc campaignDoc
	err = m.campaigns.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := fromDoc(doc)

	return &out, nil
}

// DeleteCampaignByID удаляет кампанию. При отсутствии записи — storage.ErrNotFound.
func (m *Mongo) DeleteCampaignByID(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteCampaignByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.campaigns.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
