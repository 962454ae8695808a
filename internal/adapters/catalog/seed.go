package catalog

import "github.com/marquee-live/marquee/internal/domain/model"

// miles is a seed-file shorthand for the optional distance field.
func miles(v float64) *float64 { return &v }

// demoHosts returns the built-in demo hosts.
func demoHosts() []model.Host {
	return []model.Host{
		{ID: "h1", Name: "Neon Nights Co.", Followers: 48_200},
		{ID: "h2", Name: "Downtown Live", Followers: 19_200},
		{ID: "h3", Name: "Skyline Events", Followers: 76_500},
		{ID: "h4", Name: "Harbor Collective", Followers: 33_800},
		{ID: "h5", Name: "Golden Stage", Followers: 58_600},
	}
}

// demoArtists returns the built-in demo artists.
func demoArtists() []model.Artist {
	return []model.Artist{
		{ID: "a1", Name: "DJ Aurora", Genre: "EDM", Followers: 120_000},
		{ID: "a2", Name: "Midnight Trio", Genre: "Indie", Followers: 54_000},
		{ID: "a3", Name: "Luna Vox", Genre: "Pop", Followers: 220_000},
		{ID: "a4", Name: "Crimson Tide", Genre: "Rock", Followers: 87_000},
		{ID: "a5", Name: "Sable", Genre: "Hip-Hop", Followers: 133_000},
		{ID: "a6", Name: "Blue Echo", Genre: "R&B", Followers: 76_000},
		{ID: "a7", Name: "Sunset Drive", Genre: "House", Followers: 51_000},
		{ID: "a8", Name: "Velvet Lane", Genre: "Jazz", Followers: 29_000},
		{ID: "a9", Name: "Nova", Genre: "Pop", Followers: 201_000},
		{ID: "a10", Name: "Ghostwave", Genre: "Electronic", Followers: 99_000},
		{ID: "a11", Name: "Starlight Choir", Genre: "Classical", Followers: 12_500},
		{ID: "a12", Name: "Echo Pulse", Genre: "EDM", Followers: 142_000},
		{ID: "a13", Name: "The Nomads", Genre: "Folk", Followers: 44_000},
		{ID: "a14", Name: "Silver Strings", Genre: "Country", Followers: 61_000},
		{ID: "a15", Name: "Urban Poets", Genre: "Hip-Hop", Followers: 187_000},
		{ID: "a16", Name: "Dreamcatcher", Genre: "K-Pop", Followers: 390_000},
		{ID: "a17", Name: "Obsidian Sun", Genre: "Metal", Followers: 73_000},
		{ID: "a18", Name: "Golden Hour Band", Genre: "Jazz", Followers: 26_000},
		{ID: "a19", Name: "DeepFlow", Genre: "House", Followers: 112_000},
		{ID: "a20", Name: "Cascadia", Genre: "Indie", Followers: 67_000},
	}
}

// demoEvents returns the built-in demo events. None of them list a price;
// the demo relies on the fair-price machinery on the detail view instead.
func demoEvents() []model.Event {
	return []model.Event{
		{ID: "e1", Name: "Neon City Fest", Genre: "EDM", Likes: 2100, HostID: "h1", ArtistIDs: []string{"a1", "a7", "a10"}, Distance: miles(2.3)},
		{ID: "e2", Name: "Indie Under Stars", Genre: "Indie", Likes: 980, HostID: "h2", ArtistIDs: []string{"a2", "a8"}, Distance: miles(5.1)},
		{ID: "e3", Name: "Luna Live", Genre: "Pop", Likes: 3400, HostID: "h1", ArtistIDs: []string{"a3", "a9"}, Distance: miles(1.7)},
		{ID: "e4", Name: "Crimson Arena", Genre: "Rock", Likes: 1260, HostID: "h2", ArtistIDs: []string{"a4"}, Distance: miles(3.4)},
		{ID: "e5", Name: "Sable Sessions", Genre: "Hip-Hop", Likes: 1720, HostID: "h2", ArtistIDs: []string{"a5"}, Distance: miles(4.8)},
		{ID: "e6", Name: "Blue Hour", Genre: "R&B", Likes: 880, HostID: "h1", ArtistIDs: []string{"a6"}, Distance: miles(2.9)},
		{ID: "e7", Name: "Harbor Jazz Nights", Genre: "Jazz", Likes: 430, HostID: "h4", ArtistIDs: []string{"a8", "a18"}, Distance: miles(7.2)},
		{ID: "e8", Name: "Skyline Pulse", Genre: "EDM", Likes: 2980, HostID: "h3", ArtistIDs: []string{"a12"}, Distance: miles(12.0)},
		{ID: "e9", Name: "Starlight Gala", Genre: "Classical", Likes: 210, HostID: "h5", ArtistIDs: []string{"a11"}, Distance: miles(15.0)},
		{ID: "e10", Name: "Country Roads Live", Genre: "Country", Likes: 740, HostID: "h5", ArtistIDs: []string{"a14"}, Distance: miles(9.8)},
		{ID: "e11", Name: "Urban Flow", Genre: "Hip-Hop", Likes: 2410, HostID: "h3", ArtistIDs: []string{"a15"}, Distance: miles(2.0)},
		{ID: "e12", Name: "Dreamcatcher Tour", Genre: "K-Pop", Likes: 5600, HostID: "h1", ArtistIDs: []string{"a16"}, Distance: miles(6.5)},
		{ID: "e13", Name: "Obsidian Rock Fest", Genre: "Metal", Likes: 1330, HostID: "h4", ArtistIDs: []string{"a17"}, Distance: miles(4.2)},
		{ID: "e14", Name: "Golden Hour Live", Genre: "Jazz", Likes: 390, HostID: "h5", ArtistIDs: []string{"a18"}, Distance: miles(8.6)},
		{ID: "e15", Name: "DeepFlow Party", Genre: "House", Likes: 1990, HostID: "h3", ArtistIDs: []string{"a19", "a7"}, Distance: miles(1.5)},
		{ID: "e16", Name: "Cascadia Indie Fest", Genre: "Indie", Likes: 870, HostID: "h2", ArtistIDs: []string{"a2", "a20"}, Distance: miles(13.4)},
		{ID: "e17", Name: "Nova Lights", Genre: "Pop", Likes: 2780, HostID: "h1", ArtistIDs: []string{"a9"}, Distance: miles(3.3)},
		{ID: "e18", Name: "Rock the Harbor", Genre: "Rock", Likes: 1650, HostID: "h4", ArtistIDs: []string{"a4", "a17"}, Distance: miles(6.8)},
		{ID: "e19", Name: "Velvet Lane Session", Genre: "Jazz", Likes: 310, HostID: "h5", ArtistIDs: []string{"a8"}, Distance: miles(2.6)},
		{ID: "e20", Name: "Skyline Beats", Genre: "EDM", Likes: 4510, HostID: "h3", ArtistIDs: []string{"a1", "a12"}, Distance: miles(10.0)},
	}
}
