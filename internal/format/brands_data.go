package format

var defaultBrands = []string{
	// Own labels
	"Hacendado", "Deliplus", "Bosque Verde",

	// Water and soft drinks
	"Bronchales", "Cortes", "Bezoya", "Nestlé Aquarel", "Font Vella",
	"Solán de Cabras", "Lanjarón", "Vichy Catalan", "San Pellegrino",
	"La Casera", "Fonter", "La Casa", "Aquarius", "Iso drink", "nestle",
	"Fuze Tea", "Simon Life", "Sunny Delight", "Bifrutas", "Danacol",
	"Coca-Cola", "Fanta", "Sprite", "Schweppes", "Bitter Kas",
	"Monster", "Red Bull", "Burn", "Enervit Sport",

	// Beer
	"Heineken", "Amstel", "Mahou", "San Miguel", "Steinburg",
	"Voll-Damm", "Krombacher", "Estrella Galicia", "El Águila",
	"Alhambra", "Falke", "Turia", "1897", "1906",

	// Spirits
	"Larios", "Beefeater", "Seagram's", "Tanqueray", "Glivery",
	"Kingerly & Sons", "Convidado de Baco", "Terry", "Cutty Sark",
	"Ballantine's", "Johnnie Walker", "J&B", "James Webb",
	"Grand Old Parr", "Negrita", "La Recompensa", "Ron Barceló",
	"Malibu", "Royal Swan", "Puente Pazos", "Knebep", "Cassalla Cerveró",
	"Tenis", "Dama Mayor", "Ricard Pastis de Marseille", "Limiñana",
	"Franzini", "Jägermeister", "Del Patriarca", "Maronti", "Martini",
	"Aperol", "Campari", "Cerol",

	// Cider and cava
	"El Mayu", "Polián", "El Lagar", "Cabré & Sabaté",
	"Señorío De Requena", "Jaume Serra", "Anna Codorníu", "Freixenet",
	"Viña Secret Brut",

	// Wine
	"Casón Histórico", "Don Simón", "Marina Alta", "Fidencio",
	"Pazo de Orantes", "Semiluna", "Mar de Uvas", "Arribeño",
	"Abadía Mantrús", "Condado de Teón", "El Pescaito",
	"Finca La Distinguida", "Mig Segle", "Corredera",
	"Castillo de Salobreña", "Piccolo Giovanni", "DulZ.Ze",
	"Hypatia", "ValdeSalud", "Dominio de Borgia", "Elegido",
	"Masía de Altigón", "El Coto", "Comportillo", "Cune",
	"Coto de Imaz", "Pieza Rey", "Viña Albali", "Pata Negra",
	"Señorío de los Llanos", "13 Hectáreas", "Borsao",
	"El Mandamás The Guv'Nor", "Davida", "Torre Oria",
	"Para Pecar", "Arc de Pedra", "Diamante", "Ponce de Albayda",
	"Finca La Malcriada", "Dolce Cueva", "Arteso Clarete",

	// Chocolate and sweets
	"Nesquik", "ColaCao", "La Chocolatera", "Valor", "Milka",
	"Kit-Kat", "Huesitos", "Meivel", "Pintarolas",
	"Halls", "Pifarré", "Cerdán", "Royal Mints", "Trolli", "Vidal",
	"Dulciora",

	// Sauces, olives and snacks
	"Hellmann's", "Ligeresa", "Musa", "Chovi", "Hida", "J-Lek",
	"Casa Juncal", "Polasal",
	"Huerta de Barros", "Campo Nature", "Olives García",
	"Lay's", "Pringles", "Cheetos", "Munchos", "Anitin", "Bachman",
	"Galbusera",

	// Rice and pasta
	"La Fallera", "Sabroz", "Bia", "Sabor", "Luengo", "Felicia",
	"Armando", "Pagani",

	// Coffee and tea
	"Dolce Gusto", "Bonka", "Cafés Valiente", "Marcilla", "Climent",
	"Nescafé", "Campina", "PG tips", "Amanda", "Tassimo",

	// Baby
	"Hero Solo", "Peques 3 Puleva", "Puleva", "Nestlé", "Nativa",
	"Nidina", "Dodot", "Nenuco",

	// Cereals and biscuits
	"Kellogg's", "Corn Flakes", "Choco Krispies", "Brüggen",
	"Special K", "Nature Valley", "Tosta Rica",
	"Lotus Biscoff", "Oreo", "Chips Ahoy",

	// Cured meats
	"Campofrío", "Noel", "La Carloteña", "Coren", "La Selva",
	"Schara", "El Pozo", "Cárnicas Gállego", "Revilla", "Bricio",
	"De León", "Incarlopsa", "Jamcal", "Paletas Marpa",
	"Antonio Álvarez", "Embutidos Pajariel", "Costa Brava",
	"El Cierzo", "Covap", "Andares", "La Piara", "L'Illa especialidades",
	"Can Pere Joan", "Rogusa", "La Hacienda del ibérico", "Juan del Roble",

	// Cheese
	"Zanetti", "Punteiro", "Holland Corona", "Holland", "Entrepinares",
	"Babybel", "La vaca que ríe", "Philadelphia", "Burgo de Arias",
	"Marcillat", "Liptana", "Plaisir de Roy", "Montesinos", "Richesmonts",

	// Fish and ready meals
	"Royal Greenland", "MareDeus", "Nortindal", "Fiesta", "Camós",
	"Convite", "Jamar", "Starlux", "Avecrem", "Knorr", "Hengstenberg",
	"Danet", "Gallina Blanca",

	// Personal care
	"TRESemmé", "O'lysee", "Ultrex", "Colorcor", "Color Sensation",
	"Color Mask", "Nelly", "Giorgi", "Elnett", "Fructis", "Syoss",
	"Nivea", "Nivea Men", "Axe", "L'Oréal", "Atlantia", "Dove",
	"Facial Clean", "Montagne Jeunesse", "Khanya", "Wilkinson",
	"Sanex", "Byly", "Tulipán Negro", "Deonat", "Rexona", "Lactovit",
	"Natural Honey", "La Toja", "Magno", "Heno de Pravia", "Pantene",
	"Excellence Creme", "Gillette", "Elvive",
	"Colgate", "Oral-B", "Signal", "Sensodyne", "Parodontax",
	"Benfix", "Listerine",
	"Evax", "Ausonia", "Carefree", "Tampax",

	// Perfumery
	"S3", "Rose Nude", "Elección", "9.60", "Como Tú", "Chanson d'Eau",
	"Ikiru", "Vuela", "Soplo", "Blue Shine", "My Soul", "Verissime",
	"Cosmic Shine", "Éclant", "Monogotas", "Boem", "Women'Secret",
	"Sun Med", "Colagen", "Vitaldin", "Moldex",

	// Household
	"Ariel", "Micolor", "Beltrán", "Estrella", "Orache", "Krisul",
	"Las 3 Brujas", "Bref", "KH-7", "Vitroclen", "Pronto", "Aladdin",
	"Finish", "Somat", "Alibérico", "Fairy",

	// Other
	"Roura", "Encendido", "Tres Estrellas", "Clipper", "Yak",
	"Rimmel London", "Dulcita", "Delikuit", "Quartett", "Single",
	"Natura", "Krislin", "IGP", "Listo para Comer", "Granzoo", "Compy",
	"Nuske", "Durex", "Royal", "Levital",
}
