package config

const Template = `
name: {{ name }}
path: {{ output_path }}
description: {{ description }}

providers:
  aws:
    account: {{ aws_account_id }}
    region: {{ aws_region }}

backend:
  type: {{ s3 | gcs | local }}
  bucket: {{ backend_bucket }}
  prefix: {{ backend_prefix }}

notify:
  project: {{ gcp_project_id }}
  topic: {{ pubsub_topic }}

repositories:
  - id: {{ repository_id }}
    name: {{ codecommit_repository_name }}
    import: {{ true | false }}

buckets:
  - id: {{ bucket_id }}
    name: {{ bucket_name }}
    import: {{ true | false }}

projects:
  - id: {{ project_id }}
    name: {{ codebuild_project_name }}
    image: {{ build_image }}
    buildspec: {{ buildspec_path }}
    source:
      type: {{ codecommit | codepipeline | github | github_enterprise | bitbucket | s3 }}
      location: {{ clone_url }}
      repository: {{ repository_id }}
      bucket: {{ bucket_id }}
      path: {{ object_path }}
      oauth_token_env: {{ token_env_var }}
`
