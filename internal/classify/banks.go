package classify

import "github.com/sutandi/asisten/pkg/types"

// Default phrase banks. All banks are multilingual (Indonesian + English)
// because messages arrive in either language, and non-id/en input is pivoted
// to Indonesian before classification. Every bank can be overridden from the
// YAML file referenced by ASISTEN_BANKS_PATH.

// defaultDomainCandidates holds the reference phrases per domain. They serve
// double duty: as substring keywords for the deterministic override and as
// the phrase bank for the embedding nearest-neighbor vote.
var defaultDomainCandidates = map[types.Domain][]string{
	types.DomainFood: {
		"makan", "mau makan", "lagi laper", "lapar", "pesan makanan", "beli makan",
		"delivery", "pesan makan siang", "gofood", "grabfood", "antar makanan",
		"restoran", "resto", "rumah makan", "cari restoran", "tempat makan",
		"warteg", "kafe", "kulineran", "menu makanan", "daftar menu",
		"rekomendasi makanan", "makanan enak", "kuliner lokal", "masakan padang",
		"makan siang", "makan malam", "sarapan", "ngemil", "jajan",
		"nasi goreng", "ayam geprek", "sate", "bakso", "mie ayam", "martabak",
		"burger", "pizza", "ramen", "sushi", "katering",
		"order food", "i'm hungry", "food delivery", "takeaway", "dine in",
		"where to eat", "find restaurant", "best food near me", "street food",
		"indonesian food", "spicy food", "halal food", "vegetarian food",
		"snacks", "lunch place", "dinner ideas", "breakfast spot", "coffee shop",
		"restaurant recommendations", "food near me", "book a table",
		"popular dishes", "cheap food", "healthy food", "fast food", "brunch",
		"recommend me food", "reorder", "my favorite dish",
	},
	types.DomainTravel: {
		"liburan", "jalan-jalan", "wisata", "berwisata", "destinasi wisata",
		"trip ke bali", "cari destinasi", "paket liburan", "paket wisata",
		"booking hotel", "pesan hotel", "cari hotel", "akomodasi", "penginapan",
		"villa", "resort", "homestay", "hotel murah", "staycation",
		"tiket pesawat", "penerbangan", "pesan tiket", "tiket murah",
		"cari penerbangan", "bandara", "jadwal pesawat", "itinerary",
		"rencana perjalanan", "backpacker", "naik pesawat", "transit", "visa",
		"paspor", "bagasi", "check in", "boarding", "refund tiket",
		"travel", "vacation", "trip", "holiday", "tour", "book a trip",
		"plan vacation", "travel destination", "find hotel", "book hotel",
		"accommodation", "cheap flights", "airline tickets", "plane ticket",
		"round trip", "flight deals", "book flight", "best places to visit",
		"travel guide", "city tour", "beach holiday", "island getaway",
		"travel insurance", "flight delay", "airport transfer", "road trip",
		"car rental", "train ticket", "honeymoon trip", "flight schedule",
		"cancel flight", "budget travel",
	},
	types.DomainMarketplace: {
		"belanja", "belanja online", "shopping", "beli produk", "beli barang",
		"beli online", "cari barang", "order barang", "toko online",
		"online shop", "e-commerce", "marketplace", "katalog produk", "promo",
		"diskon", "harga murah", "barang murah", "flash sale", "grosir",
		"jual barang", "jual produk", "tokopedia", "shopee", "lazada",
		"bukalapak", "barang elektronik", "produk fashion", "pakaian", "sepatu",
		"tas", "smartphone", "gadget", "aksesoris", "hp murah", "beli laptop",
		"jam tangan",
		"buy item", "buy products", "shop online", "online store", "add to cart",
		"checkout", "track order", "shopping deals", "cheap products",
		"discounted items", "buy electronics", "tech gadgets", "fashion items",
		"buy shoes", "order status", "return product", "refund request",
		"promo code", "wishlist", "compare prices", "product review",
		"free shipping", "cash on delivery", "search product", "buy now",
		"best deal", "pre-order", "new arrival", "find laptop",
		"home appliances", "kitchen tools",
	},
	types.DomainGeneral: {
		"hello", "hi", "halo", "hey", "apa kabar", "selamat pagi",
		"selamat malam", "start", "mulai", "bantuan", "help", "tolong",
		"login", "logout", "masuk akun", "daftar", "registrasi", "akun",
		"profil", "ganti password", "lupa password", "reset password",
		"settings", "pengaturan", "preferensi", "ubah bahasa", "dark mode",
		"what can you do", "who are you", "assistant", "chatbot",
		"bisa bantu apa", "home", "beranda", "kembali", "exit", "restart",
		"cancel", "stop", "selesai", "oke",
		"faq", "panduan", "tutorial", "cara pakai", "kontak admin",
		"feedback", "kritik saran", "lapor masalah", "rate app", "review",
		"privacy", "terms", "kebijakan privasi", "activity log",
	},
}

// defaultIntentExamples holds the example utterances per intent. Intent
// score is the maximum similarity against any example.
var defaultIntentExamples = map[string][]string{
	"order_food": {
		"I'd like to order food", "pesan makanan", "I want sushi",
		"beli makanan", "delivery pizza", "mau makan ayam", "order makanan",
		"mau gofood", "pesan gofood", "order grabfood", "lagi lapar nih",
		"antar makanan ke rumah", "lagi pengen mie",
	},
	"find_restaurant": {
		"cari restoran", "restaurant near me", "tempat makan enak",
		"restoran terdekat", "find place to eat", "mau makan di luar",
		"cari tempat makan", "restoran yang buka sekarang",
		"dimana tempat makan enak?", "tempat makan keluarga",
		"resto enak di jakarta", "restoran all you can eat",
	},
	"recommendation": {
		"makan apa ya?", "recommend me something", "saran makanan",
		"kasih rekomendasi makanan", "any good food?", "what do you recommend?",
		"kasih ide makan siang", "rekomendasi makanan enak",
		"bingung mau makan apa", "ada rekomendasi makan malam?",
		"what's good to eat?",
	},
	"book_flight": {
		"book a flight", "pesan tiket pesawat", "I want to fly",
		"terbang ke bali", "cari penerbangan", "beli tiket pesawat",
		"flight to Jakarta", "booking tiket ke surabaya", "penerbangan murah",
		"jadwal pesawat hari ini", "beli tiket pp jakarta bali",
	},
	"find_hotel": {
		"cari hotel", "hotel murah di bali", "find me a place to stay",
		"penginapan di ubud", "booking hotel", "akomodasi murah",
		"tempat menginap", "cari homestay", "hotel yang dekat pantai",
		"budget hotel", "penginapan dekat bandara", "hotel untuk keluarga",
	},
	"travel_recommendation": {
		"tempat liburan", "where should I go?", "tourist spot",
		"rekomendasi destinasi", "tempat wisata bagus", "liburan kemana ya?",
		"travel ideas", "rekomendasi tempat traveling", "spot wisata populer",
		"cari tempat healing", "short getaway ideas",
	},
	"buy_product": {
		"beli hp", "buy phone", "shopping online", "mau beli baju",
		"pesan laptop", "belanja elektronik", "buy shoes",
		"beli sepatu online", "beli barang di tokopedia", "checkout di shopee",
		"beli barang ini", "mau order barang ini", "order sepatu nike",
		"beli earphone bluetooth",
	},
	"search_product": {
		"cari barang", "search product", "product lookup", "nyari tas online",
		"cari barang elektronik", "search for item", "cari produk diskon",
		"nyari barang murah", "cari hp second", "search gadget",
		"apa ada diskon?", "barang promo hari ini",
	},
	"product_recommendation": {
		"produk bagus", "recommend product", "apa yang terbaik?",
		"rekomendasi gadget", "best product", "what should I buy?",
		"produk terbaik apa ya?", "barang recommended",
		"rekomendasi laptop untuk kerja", "minta saran beli barang",
		"barang yang lagi tren", "best value product",
	},
}

// intentOrder fixes the evaluation order of intents so score ties resolve
// deterministically.
var intentOrder = []string{
	"order_food", "find_restaurant", "recommendation",
	"book_flight", "find_hotel", "travel_recommendation",
	"buy_product", "search_product", "product_recommendation",
}

// IntentDomains maps each intent tag to its owning domain.
var IntentDomains = map[string]types.Domain{
	"order_food":             types.DomainFood,
	"find_restaurant":        types.DomainFood,
	"recommendation":         types.DomainFood,
	"book_flight":            types.DomainTravel,
	"find_hotel":             types.DomainTravel,
	"travel_recommendation":  types.DomainTravel,
	"buy_product":            types.DomainMarketplace,
	"search_product":         types.DomainMarketplace,
	"product_recommendation": types.DomainMarketplace,
}

// defaultAffinityKeywords is the keyword-occurrence table used to compute
// the dominant domain for the intent affinity boost. It is deliberately
// smaller and looser than the domain candidate bank.
var defaultAffinityKeywords = map[types.Domain][]string{
	types.DomainFood: {
		"makan", "makanan", "pesan makanan", "restoran", "tempat makan",
		"antar makanan", "kuliner", "menu", "lapar", "sarapan", "makan siang",
		"makan malam", "warung",
		"food", "eat", "hungry", "order food", "delivery", "restaurant",
		"dinner", "lunch", "breakfast", "meal", "place to eat",
	},
	types.DomainTravel: {
		"hotel", "penginapan", "liburan", "perjalanan", "pesawat", "tiket",
		"terbang", "bandara", "check in", "tempat wisata", "akomodasi",
		"flight", "vacation", "trip", "travel", "airport", "tourist",
		"destination", "stay", "book flight", "tour", "booking",
	},
	types.DomainMarketplace: {
		"beli", "barang", "produk", "belanja", "diskon", "promo", "harga",
		"jual", "pesan barang", "transaksi", "marketplace", "cari produk",
		"buy", "shop", "product", "item", "sell", "order", "discount",
		"price", "purchase", "online shopping", "deal", "sale", "ecommerce",
	},
}

// affinityOrder fixes dominant-domain tie-breaking.
var affinityOrder = []types.Domain{
	types.DomainFood, types.DomainTravel, types.DomainMarketplace,
}
