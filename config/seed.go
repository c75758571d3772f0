package config

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"evento/internal/models"
)

// seededPassword is the well-known password of the demo accounts. It is
// hashed at seed time like any registered password.
const seededPassword = "password"

var seededUsers = []models.User{
	{
		ID:     uuid.MustParse("0d2f8f6e-6a1c-4b5d-8f3a-b62f1c9a0a01"),
		Email:  "john@example.com",
		Name:   "John Doe",
		Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1",
	},
	{
		ID:     uuid.MustParse("0d2f8f6e-6a1c-4b5d-8f3a-b62f1c9a0a02"),
		Email:  "jane@example.com",
		Name:   "Jane Smith",
		Avatar: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1",
	},
}

func seedUsers(db *gorm.DB) error {
	for _, user := range seededUsers {
		var existing models.User
		if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seededPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedCatalog asserts the static event catalog. IDs are fixed so reseeding on
// every boot is idempotent and user-created events sit beside the seeds.
func seedCatalog(db *gorm.DB) error {
	for _, event := range seededEvents() {
		var existing models.Event
		if err := seedLookup(db, event.ID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&event).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedLookup matches seeded rows whether live or soft-deleted. A tombstoned
// seed keeps its primary key, so recreating it would collide; it also means a
// host removed it on purpose, and that removal sticks across boots.
func seedLookup(db *gorm.DB, id uuid.UUID) *gorm.DB {
	return db.Unscoped().Where("id = ?", id)
}

func seedID(suffix string) uuid.UUID {
	return uuid.MustParse("5eedc0de-0000-4000-8000-" + suffix)
}

func seededEvents() []models.Event {
	return []models.Event{
		{
			ID:          seedID("000000000001"),
			Title:       "React Conference 2024",
			Description: "Join us for the biggest React conference of the year featuring talks from industry leaders, workshops, and networking opportunities.",
			Date:        "2024-03-15",
			Time:        "09:00",
			Address:     "San Francisco Convention Center, 747 Howard St, San Francisco, CA 94103",
			Latitude:    37.7849,
			Longitude:   -122.4094,
			Category:    models.CategoryTech,
			HostID:      seededUsers[0].ID,
			HostName:    "Tech Events Inc",
			BannerImage: "https://images.pexels.com/photos/1181676/pexels-photo-1181676.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a001"), Name: "Early Bird", Price: 2999, Quantity: 100, Remaining: 45, Description: "Limited early bird pricing"},
				{ID: seedID("00000000a002"), Name: "Regular", Price: 3999, Quantity: 200, Remaining: 120, Description: "Standard conference ticket"},
				{ID: seedID("00000000a003"), Name: "VIP", Price: 5999, Quantity: 50, Remaining: 12, Description: "VIP access with exclusive perks"},
			},
		},
		{
			ID:          seedID("000000000002"),
			Title:       "Jazz Night at Blue Note",
			Description: "An intimate evening of smooth jazz featuring local and international artists in our cozy venue.",
			Date:        "2024-03-20",
			Time:        "20:00",
			Address:     "Blue Note Jazz Club, 131 W 3rd St, New York, NY 10012",
			Latitude:    40.7282,
			Longitude:   -74.0021,
			Category:    models.CategoryMusic,
			HostID:      seededUsers[1].ID,
			HostName:    "Blue Note Entertainment",
			BannerImage: "https://images.pexels.com/photos/1763075/pexels-photo-1763075.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a004"), Name: "General Admission", Price: 450, Quantity: 150, Remaining: 89, Description: "Standing room access"},
				{ID: seedID("00000000a005"), Name: "Reserved Seating", Price: 750, Quantity: 80, Remaining: 23, Description: "Guaranteed table seating"},
			},
		},
		{
			ID:          seedID("000000000003"),
			Title:       "Digital Marketing Workshop",
			Description: "Learn the latest digital marketing strategies and tools from industry experts. Hands-on workshop with practical exercises.",
			Date:        "2024-03-25",
			Time:        "10:00",
			Address:     "WeWork Times Square, 1460 Broadway, New York, NY 10036",
			Latitude:    40.7589,
			Longitude:   -73.9851,
			Category:    models.CategoryWorkshop,
			HostID:      seededUsers[0].ID,
			HostName:    "Marketing Pro Academy",
			BannerImage: "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a006"), Name: "Workshop Access", Price: 1499, Quantity: 30, Remaining: 8, Description: "Full workshop with materials"},
			},
		},
		{
			ID:          seedID("000000000004"),
			Title:       "Startup Pitch Competition",
			Description: "Watch innovative startups pitch their ideas to a panel of investors. Network with entrepreneurs and industry leaders.",
			Date:        "2024-04-02",
			Time:        "18:00",
			Address:     "Silicon Valley Innovation Center, 2955 Campus Dr, San Mateo, CA 94403",
			Latitude:    37.5407,
			Longitude:   -122.3131,
			Category:    models.CategoryBusiness,
			HostID:      seededUsers[0].ID,
			HostName:    "Venture Capital Network",
			BannerImage: "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a007"), Name: "Attendee", Price: 0, Quantity: 200, Remaining: 156, Description: "Free admission to watch pitches"},
				{ID: seedID("00000000a008"), Name: "Networking Pass", Price: 500, Quantity: 100, Remaining: 67, Description: "Includes networking reception"},
			},
		},
		{
			ID:          seedID("000000000005"),
			Title:       "Marathon Training Run",
			Description: "Join our weekly group training run for marathon preparation. All fitness levels welcome.",
			Date:        "2024-03-30",
			Time:        "07:00",
			Address:     "Central Park, New York, NY 10024",
			Latitude:    40.7829,
			Longitude:   -73.9654,
			Category:    models.CategorySports,
			HostID:      seededUsers[1].ID,
			HostName:    "NYC Running Club",
			BannerImage: "https://images.pexels.com/photos/2402777/pexels-photo-2402777.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a009"), Name: "Free Participation", Price: 0, Quantity: 50, Remaining: 23, Description: "Free group training session"},
			},
		},
		{
			ID:          seedID("000000000006"),
			Title:       "Contemporary Art Exhibition",
			Description: "Explore cutting-edge contemporary art from emerging and established artists. Opening night reception included.",
			Date:        "2024-04-10",
			Time:        "19:00",
			Address:     "Museum of Modern Art, 11 W 53rd St, New York, NY 10019",
			Latitude:    40.7614,
			Longitude:   -73.9776,
			Category:    models.CategoryArt,
			HostID:      seededUsers[1].ID,
			HostName:    "Modern Art Society",
			BannerImage: "https://images.pexels.com/photos/1839919/pexels-photo-1839919.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
			IsPublic:    true,
			Tickets: []models.TicketType{
				{ID: seedID("00000000a010"), Name: "General Admission", Price: 250, Quantity: 300, Remaining: 234, Description: "Access to exhibition"},
				{ID: seedID("00000000a011"), Name: "VIP Opening", Price: 750, Quantity: 50, Remaining: 18, Description: "Opening reception with artist meet & greet"},
			},
		},
	}
}
