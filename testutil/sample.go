package testutil

// ComplexDocument is a deeply nested document mixing objects, arrays and scalars.
var ComplexDocument = []byte(`{
  "dataset_name": "GenomicSocialProductConfig",
  "version": "1.0",
  "metadata": {
    "created_by": "ComplexJSONGenerator",
    "creation_date": "2024-10-27T12:00:00Z",
    "description": "A highly complex JSON object combining genomic, social, product, and configuration data."
  },
  "genome_data": {
    "gene_sequences": [
      {
        "gene_id": "G0001",
        "sequence": "ATGCGTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGCTAGC",
        "variants": [
          {"variant_id": "V0001", "type": "SNP", "position": 10},
          {"variant_id": "V0002", "type": "Insertion", "sequence": "GATTACA"}
        ]
      },
      {
        "gene_id": "G0002",
        "sequence": "CGATCGATCGATCGATCGATCGATCGATCGATCGATCGATCGATCGATCGATCG",
        "expression_levels": {"tissue_1": 0.5, "tissue_2": 0.8}
      }
    ]
  },
  "social_network": {
    "users": [
      {
        "user_id": "U0001",
        "name": "Alice",
        "connections": [
          {"user_id": "U0002", "relationship": "friend"},
          {"user_id": "U0003", "relationship": "colleague"}
        ],
        "product_reviews": [
          {"product_id": "P0001", "rating": 4, "comment": "Great product!"}
        ]
      },
      {"user_id": "U0002", "name": "Bob"}
    ]
  },
  "product_catalog": {
    "products": [
      {
        "product_id": "P0001",
        "name": "Awesome Widget",
        "description": "A very useful widget.",
        "variants": [
          {"variant_id": "PV001", "color": "red", "size": "small"},
          {"variant_id": "PV002", "color": "blue", "size": "large"}
        ],
        "related_genes": ["G0001"]
      }
    ]
  },
  "system_configuration": {
    "database": {
      "host": "db.example.com",
      "port": 5432,
      "connection_pool": {"min_connections": 10, "max_connections": 100}
    },
    "api_endpoints": [
      {"name": "get_data", "url": "/data"},
      {"name": "process_data", "url": "/process"}
    ]
  }
}`)
