package client

// Hotel is a hotel as returned by both the public and admin endpoints.
// Decimal fields are kept as the backend's string form.
type Hotel struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	City        string `json:"city" yaml:"city"`
	Address     string `json:"address" yaml:"address"`
	Rating      string `json:"rating" yaml:"rating"`
	PriceMin    string `json:"price_min" yaml:"price_min"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Room is a bookable room type of a hotel.
type Room struct {
	ID               int      `json:"id" yaml:"id"`
	Hotel            int      `json:"hotel" yaml:"hotel"`
	RoomName         string   `json:"room_name" yaml:"room_name"`
	RoomType         string   `json:"room_type,omitempty" yaml:"room_type,omitempty"`
	BedType          string   `json:"bed_type,omitempty" yaml:"bed_type,omitempty"`
	SizeInSqft       int      `json:"size_in_sqft,omitempty" yaml:"size_in_sqft,omitempty"`
	PricePerNight    string   `json:"price_per_night,omitempty" yaml:"price_per_night,omitempty"`
	MaxGuests        int      `json:"max_guests,omitempty" yaml:"max_guests,omitempty"`
	TotalRooms       int      `json:"total_rooms" yaml:"total_rooms"`
	AvailableRooms   int      `json:"available_rooms" yaml:"available_rooms"`
	Amenities        []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	IsRefundable     bool     `json:"is_refundable" yaml:"is_refundable"`
	FreeCancellation bool     `json:"free_cancellation" yaml:"free_cancellation"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	IsAvailable      bool     `json:"is_available" yaml:"is_available"`
}

// Booking is a reservation of one room for a date range.
type Booking struct {
	ID         int    `json:"id" yaml:"id"`
	User       *int   `json:"user,omitempty" yaml:"user,omitempty"`
	Hotel      int    `json:"hotel" yaml:"hotel"`
	HotelName  string `json:"hotel_name" yaml:"hotel_name"`
	Room       int    `json:"room" yaml:"room"`
	RoomName   string `json:"room_name" yaml:"room_name"`
	CheckIn    string `json:"check_in" yaml:"check_in"`
	CheckOut   string `json:"check_out" yaml:"check_out"`
	TotalPrice string `json:"total_price" yaml:"total_price"`
	Status     string `json:"status" yaml:"status"`
	CreatedAt  string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Inventory is the per-date room count record of a room.
type Inventory struct {
	ID             int    `json:"id" yaml:"id"`
	Room           int    `json:"room" yaml:"room"`
	Date           string `json:"date" yaml:"date"`
	TotalRooms     int    `json:"total_rooms" yaml:"total_rooms"`
	BookedRooms    int    `json:"booked_rooms" yaml:"booked_rooms"`
	AvailableRooms *int   `json:"available_rooms,omitempty" yaml:"available_rooms,omitempty"`
}

// Available returns the server-computed availability, or total minus booked
// when the server omitted it.
func (i Inventory) Available() int {
	if i.AvailableRooms != nil {
		return *i.AvailableRooms
	}
	return i.TotalRooms - i.BookedRooms
}

// Image is a hotel or room photo.
type Image struct {
	ID        int    `json:"id" yaml:"id"`
	Image     string `json:"image" yaml:"image"`
	ImageURL  string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	AltText   string `json:"alt_text,omitempty" yaml:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary" yaml:"is_primary"`
	Order     int    `json:"order" yaml:"order"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Profile is the signed-in user's profile.
type Profile struct {
	Username    string `json:"username" yaml:"username"`
	FullName    string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	Country     string `json:"country,omitempty" yaml:"country,omitempty"`
	IsStaff     bool   `json:"is_staff" yaml:"is_staff"`
	IsSuperuser bool   `json:"is_superuser" yaml:"is_superuser"`
}

// TokenPair is the staff JWT pair.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
