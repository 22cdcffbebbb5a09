package catalog

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

const (
	CategoryAll         = "all"
	CategoryStatues     = "Statues"
	CategoryCoins       = "Coins & Currency"
	CategoryDecor       = "Vintage Décor"
	CategoryCollectible = "Collectible Items"
)

var defaultProducts = []Product{
	{ID: "s1", Name: "Bronze Temple Idol", Price: 18500, Category: CategoryStatues, Image: "https://c8.alamy.com/comp/C55B57/antique-pieces-on-sale-in-india-C55B57.jpg"},
	{ID: "s2", Name: "Vintage Wooden Krishna Statue", Price: 12000, Category: CategoryStatues, Image: "https://ashtok.com/cdn/shop/files/IMG20231104140218_800x.jpg?v=1699423285"},
	{ID: "s3", Name: "Brass Ganesha Idol", Price: 9500, Category: CategoryStatues, Image: "https://www.jaipurcraftonline.com/cdn/shop/files/CPP00175_450x.jpg?v=1688231125"},

	{ID: "c1", Name: "Ancient Roman Coin Replica", Price: 3200, Category: CategoryCoins, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRJmTt1wDI-mQT9FaTF4T34RH-0W0I-D4gfQnveiD5mGHMD6A24YIUTn6zt6PYiEx9IvnU&usqp=CAU"},
	{ID: "c2", Name: "Old Indian 1 Rupee Coin (1950s Collection)", Price: 2800, Category: CategoryCoins, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSt6pn0dc_uMQcP5jXypX3gfYZvvYlNzDUoYqxUJzUxhZlvIjWb5iD84N_rdyOLHcVfFa0&usqp=CAU"},
	{ID: "c3", Name: "Vintage World Currency Set", Price: 4500, Category: CategoryCoins, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSSXx47fHXo8XdIF03kdiQ9pTrzr-FzklZjPBDqGAdf6DQ78nFL0wkvZxnHfqzjB_aT4z4&usqp=CAU"},

	{ID: "v1", Name: "Classic Gramophone Showpiece", Price: 7800, Category: CategoryDecor, Image: "https://tiimg.tistatic.com/fp/1/002/787/antique-finish-musical-show-piece-926.jpg"},
	{ID: "v2", Name: "Antique Wall Clock", Price: 6900, Category: CategoryDecor, Image: "https://www.shutterstock.com/image-photo/kochi-kerala-indiaoctober-6-2022-260nw-2329822385.jpg"},
	{ID: "v3", Name: "Vintage Lantern Lamp", Price: 3600, Category: CategoryDecor, Image: "https://www.proantic.com/galerie/florin-antiques/img/1398403-main-66e00a5c186db.jpg"},

	{ID: "k1", Name: "Old Classic Book (Collector’s Edition)", Price: 2200, Category: CategoryCollectible, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT8p8Ybp6y5_aZS4fprgXy7pa4m9j9KyP2SPslEgF6gT2Wz3zkh9HwbrXn8euGH4xgKe8o&usqp=CAU"},
	{ID: "k2", Name: "Vintage Ink Pen Set", Price: 1900, Category: CategoryCollectible, Image: "https://m.media-amazon.com/images/I/71NIc8VkeEL._AC_UF894,1000_QL80_.jpg"},
	{ID: "k3", Name: "Handcrafted Wooden Jewelry Box", Price: 3300, Category: CategoryCollectible, Image: "https://craftzone.in/backend/uploads/products/SKU0000003816/18554198aa9649b137dd2008aba4e5a7.webp"},
}
