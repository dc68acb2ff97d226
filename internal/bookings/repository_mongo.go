package bookings

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// bookingDocument is the MongoDB shape of a Booking
type bookingDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Contact        string             `bson:"contact"`
	From           string             `bson:"from"`
	To             string             `bson:"to"`
	TripType       string             `bson:"tripType"`
	Date           *string            `bson:"date"`
	StartDate      *string            `bson:"startDate"`
	EndDate        *string            `bson:"endDate"`
	PassengerCount int                `bson:"passenger"`
	PaymentAmount  float64            `bson:"paymentAmount"`
	PaymentStatus  string             `bson:"paymentStatus"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func toDocument(b *Booking) bookingDocument {
	return bookingDocument{
		Email:          b.Email,
		Contact:        b.Contact,
		From:           b.From,
		To:             b.To,
		TripType:       string(b.TripType),
		Date:           b.Date,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		PassengerCount: b.PassengerCount,
		PaymentAmount:  b.PaymentAmount,
		PaymentStatus:  string(b.PaymentStatus),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (d bookingDocument) toBooking() Booking {
	return Booking{
		ID:             d.ID.Hex(),
		Email:          d.Email,
		Contact:        d.Contact,
		From:           d.From,
		To:             d.To,
		TripType:       TripType(d.TripType),
		Date:           d.Date,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		PassengerCount: d.PassengerCount,
		PaymentAmount:  d.PaymentAmount,
		PaymentStatus:  PaymentStatus(d.PaymentStatus),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository returns the MongoDB-backed repository
func NewMongoRepository(collection *mongo.Collection) Repository {
	return &mongoRepository{collection: collection}
}

func (r *mongoRepository) Insert(ctx context.Context, booking *Booking) error {
	doc := toDocument(booking)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	booking.ID = doc.ID.Hex()
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot name any stored booking
		return nil, ErrNotFound
	}

	var doc bookingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking := doc.toBooking()
	return &booking, nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []Booking{}
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, doc.toBooking())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoRepository) Replace(ctx context.Context, booking *Booking) error {
	objID, err := primitive.ObjectIDFromHex(booking.ID)
	if err != nil {
		return ErrNotFound
	}

	doc := toDocument(booking)
	doc.ID = objID

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objID}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id string) (*Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc bookingDocument
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking := doc.toBooking()
	return &booking, nil
}
